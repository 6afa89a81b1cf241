package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// SweeperConfig configures the stale run sweeper.
type SweeperConfig struct {
	// Period is the interval between sweeps.
	Period time.Duration
	// StaleAfter is the age after which a PROCESSING record is checked.
	StaleAfter time.Duration
	// BatchSize bounds the records checked per sweep.
	BatchSize int
}

// SweeperRepository is the storage the sweeper reads and writes.
type SweeperRepository interface {
	repository.File
	repository.Lease
}

// Sweeper fails the PROCESSING records whose run stopped without recording
// a terminal status, e.g. because the process crashed. A run is alive as long
// as it holds its lease.
type Sweeper struct {
	repository SweeperRepository
	cfg        SweeperConfig
	now        func() time.Time
}

// NewSweeper returns a sweeper over r.
func NewSweeper(r SweeperRepository, cfg SweeperConfig) *Sweeper {
	if cfg.Period <= 0 {
		cfg.Period = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Sweeper{
		repository: r,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Start sweeps every period until ctx is done.
func (s *Sweeper) Start(ctx context.Context) {
	log, _ := logger.GetZapLogger(ctx)
	ticker := time.NewTicker(s.cfg.Period)
	defer ticker.Stop()

	log.Info("Stale run sweeper started", zap.Duration("period", s.cfg.Period))
	for {
		select {
		case <-ctx.Done():
			log.Info("Stale run sweeper received termination signal")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				log.Error("Failed to sweep stale runs", zap.Error(err))
			}
		}
	}
}

// Sweep runs a single pass and returns the number of records it failed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	log, _ := logger.GetZapLogger(ctx)

	files, err := s.repository.ListStaleProcessingFiles(ctx, s.now().Add(-s.cfg.StaleAfter), s.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}

	fileUIDs := make([]types.FileUIDType, len(files))
	for i, f := range files {
		fileUIDs[i] = f.UID
	}
	leased, err := s.repository.ListLeasedFiles(ctx, fileUIDs)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, f := range files {
		if leased[f.UID] {
			continue
		}

		err := s.repository.UpdateFileStatus(ctx, f.UID, repository.FileStatusUpdate{
			Status:  types.FileProcessStatusFailed,
			Message: interruptedMessage,
		})
		switch {
		case err == nil:
			swept++
			log.Warn("Marked interrupted run as FAILED",
				zap.String("fileUID", f.UID.String()),
				zap.Time("updateTime", f.UpdateTime))
		case errors.Is(err, errdomain.ErrStatusConflict):
			// The run finished in the meantime.
		default:
			return swept, err
		}
	}

	return swept, nil
}
