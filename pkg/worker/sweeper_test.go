package worker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/types"
)

func newSweeperRepository(c *qt.C) (repository.Repository, *miniredis.Miniredis) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	c.Assert(err, qt.IsNil)

	sqlDB, err := db.DB()
	c.Assert(err, qt.IsNil)
	sqlDB.SetMaxOpenConns(1)
	c.Cleanup(func() { _ = sqlDB.Close() })
	c.Assert(db.AutoMigrate(&repository.FileModel{}), qt.IsNil)

	mr := miniredis.RunT(c)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c.Cleanup(func() { _ = rc.Close() })

	return repository.NewRepository(db, nil, rc), mr
}

func createFileAt(c *qt.C, repo repository.Repository, key string, updateTime time.Time) *repository.FileModel {
	file, err := repo.CreateFile(context.Background(), repository.FileModel{
		Key:         key,
		Name:        key + ".pdf",
		OwnerUID:    "kp_1",
		LocationURL: "https://uploads.example.com/" + key,
		UpdateTime:  updateTime,
	})
	c.Assert(err, qt.IsNil)
	return file
}

func TestSweeper_Sweep(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	repo, _ := newSweeperRepository(c)
	now := time.Now().UTC()

	interrupted := createFileAt(c, repo, "interrupted", now.Add(-time.Hour))
	live := createFileAt(c, repo, "live", now.Add(-time.Hour))
	fresh := createFileAt(c, repo, "fresh", now)

	ok, err := repo.AcquireRunLease(ctx, live.UID, time.Minute)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	sweeper := NewSweeper(repo, SweeperConfig{StaleAfter: 15 * time.Minute, BatchSize: 10})

	swept, err := sweeper.Sweep(ctx)
	c.Assert(err, qt.IsNil)
	c.Check(swept, qt.Equals, 1)

	got, err := repo.GetFileByUID(ctx, interrupted.UID)
	c.Assert(err, qt.IsNil)
	c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
	c.Check(got.StatusMessage, qt.Equals, interruptedMessage)

	for _, uid := range []types.FileUIDType{live.UID, fresh.UID} {
		got, err := repo.GetFileByUID(ctx, uid)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusProcessing)
	}

	// Nothing left to sweep.
	swept, err = sweeper.Sweep(ctx)
	c.Assert(err, qt.IsNil)
	c.Check(swept, qt.Equals, 0)
}

func TestSweeper_Start(t *testing.T) {
	c := qt.New(t)

	repo, _ := newSweeperRepository(c)
	file := createFileAt(c, repo, "interrupted", time.Now().UTC().Add(-time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewSweeper(repo, SweeperConfig{Period: 10 * time.Millisecond, StaleAfter: time.Minute}).Start(ctx)
	}()

	c.Assert(waitFor(func() bool {
		got, err := repo.GetFileByUID(context.Background(), file.UID)
		return err == nil && got.Status == types.FileProcessStatusFailed
	}), qt.IsTrue)

	cancel()
	<-done
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
