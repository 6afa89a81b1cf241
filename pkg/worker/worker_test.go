package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid"
	"github.com/gojuno/minimock/v3"
	"github.com/panjf2000/ants/v2"
	"github.com/redis/go-redis/v9"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/mock"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

type finishCall struct {
	fileUID   types.FileUIDType
	pageCount int
	runErr    error
}

// newServiceMock returns a ServiceMock whose Start creates a PROCESSING
// record for the event.
func newServiceMock(c *qt.C) *mock.ServiceMock {
	return mock.NewServiceMock(minimock.NewController(c)).
		StartMock.Set(func(_ context.Context, event types.UploadEvent) (*repository.FileModel, error) {
			return &repository.FileModel{
				UID:      uuid.Must(uuid.NewV4()),
				Key:      event.FileKey,
				Name:     event.FileName,
				OwnerUID: event.OwnerUID,
				Status:   types.FileProcessStatusProcessing,
			}, nil
		})
}

// finishInto records the Finish calls in ch.
func finishInto(ch chan<- finishCall) func(context.Context, types.FileUIDType, int, error) error {
	return func(_ context.Context, fileUID types.FileUIDType, pageCount int, runErr error) error {
		ch <- finishCall{fileUID: fileUID, pageCount: pageCount, runErr: runErr}
		return nil
	}
}

func collect(ch chan finishCall) []finishCall {
	close(ch)
	var calls []finishCall
	for call := range ch {
		calls = append(calls, call)
	}
	return calls
}

func newTestRedis(c *qt.C) (repository.Repository, *miniredis.Miniredis) {
	mr := miniredis.RunT(c)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c.Cleanup(func() { _ = rc.Close() })
	return repository.NewRepository(nil, nil, rc), mr
}

func leaseKey(fileUID types.FileUIDType) string {
	return "ingest-run-" + fileUID.String()
}

func TestPool_Submit(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("runs hold a lease until finished", func(c *qt.C) {
		repo, mr := newTestRedis(c)

		var leasedDuringRun sync.Map
		finished := make(chan finishCall, 3)
		svc := newServiceMock(c).
			ProcessMock.Set(func(_ context.Context, file *repository.FileModel) (int, error) {
				leasedDuringRun.Store(file.UID, mr.Exists(leaseKey(file.UID)))
				return 3, nil
			}).
			FinishMock.Set(finishInto(finished))

		pool, err := NewPool(ctx, svc, repo, PoolConfig{Size: 2, LeaseTTL: time.Minute, LeasePeriod: 10 * time.Millisecond})
		c.Assert(err, qt.IsNil)

		for i := range 3 {
			event := types.UploadEvent{FileKey: fmt.Sprintf("key-%d", i), FileName: "a.pdf", OwnerUID: "kp_1"}
			c.Assert(retrySubmit(pool, event), qt.IsNil)
		}
		c.Assert(pool.GracefulStop(5*time.Second), qt.IsNil)

		calls := collect(finished)
		c.Assert(calls, qt.HasLen, 3)
		for _, call := range calls {
			c.Check(call.pageCount, qt.Equals, 3)
			c.Check(call.runErr, qt.IsNil)

			held, ok := leasedDuringRun.Load(call.fileUID)
			c.Check(ok, qt.IsTrue)
			c.Check(held, qt.Equals, true)
			c.Check(mr.Exists(leaseKey(call.fileUID)), qt.IsFalse)
		}
	})

	c.Run("failed run is finished with its error", func(c *qt.C) {
		repo, _ := newTestRedis(c)
		runErr := errors.New("fetch failed")
		finished := make(chan finishCall, 1)
		svc := newServiceMock(c).
			ProcessMock.Return(0, runErr).
			FinishMock.Set(finishInto(finished))

		pool, err := NewPool(ctx, svc, repo, PoolConfig{Size: 1})
		c.Assert(err, qt.IsNil)

		c.Assert(pool.Submit(ctx, types.UploadEvent{FileKey: "k", FileName: "a.pdf", OwnerUID: "kp_1"}), qt.IsNil)
		c.Assert(pool.GracefulStop(5*time.Second), qt.IsNil)

		calls := collect(finished)
		c.Assert(calls, qt.HasLen, 1)
		c.Check(calls[0].runErr, qt.Equals, runErr)
	})

	c.Run("no run without a record", func(c *qt.C) {
		repo, _ := newTestRedis(c)
		svc := mock.NewServiceMock(minimock.NewController(c)).
			StartMock.Return(nil, errors.New("db down"))

		pool, err := NewPool(ctx, svc, repo, PoolConfig{Size: 1})
		c.Assert(err, qt.IsNil)

		c.Assert(pool.Submit(ctx, types.UploadEvent{FileKey: "k", FileName: "a.pdf", OwnerUID: "kp_1"}), qt.IsNil)
		c.Assert(pool.GracefulStop(5*time.Second), qt.IsNil)

		c.Check(svc.StartAfterCounter(), qt.Equals, uint64(1))
		c.Check(svc.ProcessBeforeCounter(), qt.Equals, uint64(0))
		c.Check(svc.FinishBeforeCounter(), qt.Equals, uint64(0))
	})

	c.Run("overloaded pool rejects runs", func(c *qt.C) {
		repo, _ := newTestRedis(c)
		release := make(chan struct{})
		svc := newServiceMock(c).
			ProcessMock.Set(func(context.Context, *repository.FileModel) (int, error) {
				<-release
				return 1, nil
			}).
			FinishMock.Return(nil)

		pool, err := NewPool(ctx, svc, repo, PoolConfig{Size: 1})
		c.Assert(err, qt.IsNil)

		event := types.UploadEvent{FileKey: "k", FileName: "a.pdf", OwnerUID: "kp_1"}
		c.Assert(pool.Submit(ctx, event), qt.IsNil)

		err = pool.Submit(ctx, event)
		c.Check(errors.Is(err, ants.ErrPoolOverload), qt.IsTrue)
		c.Check(errors.Is(err, errdomain.ErrUnavailable), qt.IsTrue)

		close(release)
		c.Assert(pool.GracefulStop(5*time.Second), qt.IsNil)
		c.Check(svc.FinishAfterCounter(), qt.Equals, uint64(1))
	})

	c.Run("stop cancels the runs left after the timeout", func(c *qt.C) {
		repo, _ := newTestRedis(c)
		finished := make(chan finishCall, 1)
		svc := newServiceMock(c).
			ProcessMock.Set(func(ctx context.Context, _ *repository.FileModel) (int, error) {
				<-ctx.Done()
				return 0, ctx.Err()
			}).
			FinishMock.Set(finishInto(finished))

		pool, err := NewPool(ctx, svc, repo, PoolConfig{Size: 1})
		c.Assert(err, qt.IsNil)
		c.Assert(pool.Submit(ctx, types.UploadEvent{FileKey: "k", FileName: "a.pdf", OwnerUID: "kp_1"}), qt.IsNil)

		err = pool.GracefulStop(50 * time.Millisecond)
		c.Check(err, qt.Not(qt.IsNil))

		calls := collect(finished)
		c.Assert(calls, qt.HasLen, 1)
		c.Check(errors.Is(calls[0].runErr, context.Canceled), qt.IsTrue)
	})
}

// retrySubmit waits for a free worker.
func retrySubmit(pool *Pool, event types.UploadEvent) error {
	for range 100 {
		err := pool.Submit(context.Background(), event)
		if !errors.Is(err, ants.ErrPoolOverload) {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return ants.ErrPoolOverload
}
