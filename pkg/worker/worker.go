package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

const defaultLeaseTTL = 45 * time.Second

// PoolConfig configures the local executor.
type PoolConfig struct {
	// Size is the number of concurrent runs.
	Size int
	// LeaseTTL is the lifetime of a run lease, LeasePeriod the interval at
	// which a live run extends it.
	LeaseTTL    time.Duration
	LeasePeriod time.Duration
}

// Pool runs pipelines in-process. Every run holds a lease in Redis so that
// the sweeper can tell live runs from the ones a crash interrupted.
type Pool struct {
	pool    *ants.Pool
	service service.Service
	lease   repository.Lease
	cfg     PoolConfig

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool creates the local executor. Runs are bound to ctx.
func NewPool(ctx context.Context, svc service.Service, lease repository.Lease, cfg PoolConfig) (*Pool, error) {
	log, _ := logger.GetZapLogger(ctx)

	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = defaultLeaseTTL
	}
	if cfg.LeasePeriod <= 0 {
		cfg.LeasePeriod = cfg.LeaseTTL / 3
	}

	pool, err := ants.NewPool(cfg.Size,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(r any) {
			log.Error("Panic recovered in worker pool",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	return &Pool{
		pool:    pool,
		service: svc,
		lease:   lease,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Submit schedules a run for the event. It fails with ErrUnavailable when
// every worker is busy.
func (p *Pool) Submit(_ context.Context, event types.UploadEvent) error {
	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		p.run(p.ctx, event)
	})
	if err != nil {
		p.wg.Done()
		if errors.Is(err, ants.ErrPoolOverload) || errors.Is(err, ants.ErrPoolClosed) {
			return fmt.Errorf("%w: submitting run: %w", errdomain.ErrUnavailable, err)
		}
		return fmt.Errorf("submitting run: %w", err)
	}
	return nil
}

func (p *Pool) run(ctx context.Context, event types.UploadEvent) {
	log, _ := logger.GetZapLogger(ctx)

	file, err := p.service.Start(ctx, event)
	if err != nil {
		log.Error("Failed to start ingestion run",
			zap.String("fileKey", event.FileKey),
			zap.Error(err))
		return
	}

	release := p.holdLease(ctx, file.UID)
	defer release()

	pageCount, runErr := p.service.Process(ctx, file)
	// Finish logs the outcome.
	_ = p.service.Finish(ctx, file.UID, pageCount, runErr)
}

// holdLease takes the run lease of a file and extends it until the returned
// function is called. The returned function releases the lease.
func (p *Pool) holdLease(ctx context.Context, fileUID types.FileUIDType) func() {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("fileUID", fileUID.String()))

	ok, err := p.lease.AcquireRunLease(ctx, fileUID, p.cfg.LeaseTTL)
	switch {
	case err != nil:
		log.Warn("Failed to acquire run lease, running without it", zap.Error(err))
		return func() {}
	case !ok:
		log.Warn("Run lease is already held")
		return func() {}
	}

	extendCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(p.cfg.LeasePeriod)
		defer ticker.Stop()

		for {
			select {
			case <-extendCtx.Done():
				return
			case <-ticker.C:
				ok, err := p.lease.ExtendRunLease(extendCtx, fileUID, p.cfg.LeaseTTL)
				if err != nil {
					log.Warn("Failed to extend run lease", zap.Error(err))
					continue
				}
				if !ok {
					log.Warn("Run lease expired before being extended")
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
		if err := p.lease.ReleaseRunLease(context.WithoutCancel(ctx), fileUID); err != nil {
			log.Warn("Failed to release run lease", zap.Error(err))
		}
	}
}

// Running returns the number of runs in progress.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// GracefulStop stops accepting runs and waits up to timeout for the running
// ones. Runs still in progress afterwards are cancelled and recorded as
// FAILED.
func (p *Pool) GracefulStop(timeout time.Duration) error {
	log, _ := logger.GetZapLogger(p.ctx)
	log.Info("Worker pool received termination signal")

	err := p.pool.ReleaseTimeout(timeout)
	p.cancel()
	p.wg.Wait()

	log.Info("Worker pool exited")
	return err
}
