package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/types"
)

func newTestLease(c *qt.C) (Repository, *miniredis.Miniredis) {
	mr := miniredis.RunT(c)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c.Cleanup(func() { _ = rc.Close() })
	return NewRepository(nil, nil, rc), mr
}

func TestRepository_RunLease(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("acquire is exclusive", func(c *qt.C) {
		repo, _ := newTestLease(c)
		uid := uuid.Must(uuid.NewV4())

		ok, err := repo.AcquireRunLease(ctx, uid, time.Minute)
		c.Assert(err, qt.IsNil)
		c.Check(ok, qt.IsTrue)

		ok, err = repo.AcquireRunLease(ctx, uid, time.Minute)
		c.Assert(err, qt.IsNil)
		c.Check(ok, qt.IsFalse)

		c.Assert(repo.ReleaseRunLease(ctx, uid), qt.IsNil)

		ok, err = repo.AcquireRunLease(ctx, uid, time.Minute)
		c.Assert(err, qt.IsNil)
		c.Check(ok, qt.IsTrue)
	})

	c.Run("lease expires unless extended", func(c *qt.C) {
		repo, mr := newTestLease(c)
		uid := uuid.Must(uuid.NewV4())

		ok, err := repo.AcquireRunLease(ctx, uid, 10*time.Second)
		c.Assert(err, qt.IsNil)
		c.Assert(ok, qt.IsTrue)

		mr.FastForward(8 * time.Second)
		ok, err = repo.ExtendRunLease(ctx, uid, 10*time.Second)
		c.Assert(err, qt.IsNil)
		c.Check(ok, qt.IsTrue)

		mr.FastForward(8 * time.Second)
		c.Check(mr.Exists(runLeaseKey(uid)), qt.IsTrue)

		mr.FastForward(3 * time.Second)
		c.Check(mr.Exists(runLeaseKey(uid)), qt.IsFalse)

		ok, err = repo.ExtendRunLease(ctx, uid, 10*time.Second)
		c.Assert(err, qt.IsNil)
		c.Check(ok, qt.IsFalse)
	})

	c.Run("list leased files", func(c *qt.C) {
		repo, _ := newTestLease(c)
		leasedUID := uuid.Must(uuid.NewV4())
		freeUID := uuid.Must(uuid.NewV4())

		_, err := repo.AcquireRunLease(ctx, leasedUID, time.Minute)
		c.Assert(err, qt.IsNil)

		leased, err := repo.ListLeasedFiles(ctx, []types.FileUIDType{leasedUID, freeUID})
		c.Assert(err, qt.IsNil)
		c.Check(leased, qt.DeepEquals, map[types.FileUIDType]bool{leasedUID: true})

		leased, err = repo.ListLeasedFiles(ctx, nil)
		c.Assert(err, qt.IsNil)
		c.Check(leased, qt.HasLen, 0)
	})
}
