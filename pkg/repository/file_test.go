package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func newTestDB(c *qt.C) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	c.Assert(err, qt.IsNil)

	sqlDB, err := db.DB()
	c.Assert(err, qt.IsNil)
	// Every new connection to :memory: is a new database.
	sqlDB.SetMaxOpenConns(1)
	c.Cleanup(func() { _ = sqlDB.Close() })

	c.Assert(db.AutoMigrate(&FileModel{}), qt.IsNil)
	return db
}

func newTestFile() FileModel {
	return FileModel{
		Key:         "5b1a-report.pdf",
		Name:        "report.pdf",
		OwnerUID:    "kp_42",
		LocationURL: "https://uploads.example.com/5b1a-report.pdf",
	}
}

func TestRepository_CreateFile(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo := NewRepository(newTestDB(c), nil, nil)

	c.Run("ok", func(c *qt.C) {
		created, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)
		c.Check(created.UID.IsNil(), qt.IsFalse)
		c.Check(created.Status, qt.Equals, types.FileProcessStatusProcessing)
		c.Check(created.CreateTime.IsZero(), qt.IsFalse)

		got, err := repo.GetFileByUID(ctx, created.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Key, qt.Equals, "5b1a-report.pdf")
		c.Check(got.Name, qt.Equals, "report.pdf")
		c.Check(got.OwnerUID, qt.Equals, "kp_42")
		c.Check(got.Status, qt.Equals, types.FileProcessStatusProcessing)
	})

	c.Run("status is always PROCESSING on creation", func(c *qt.C) {
		f := newTestFile()
		f.Status = types.FileProcessStatusSuccess
		created, err := repo.CreateFile(ctx, f)
		c.Assert(err, qt.IsNil)
		c.Check(created.Status, qt.Equals, types.FileProcessStatusProcessing)
	})

	c.Run("one record per call", func(c *qt.C) {
		a, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)
		b, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)
		c.Check(a.UID, qt.Not(qt.Equals), b.UID)
	})
}

func TestRepository_GetFileByUID_NotFound(t *testing.T) {
	c := qt.New(t)
	repo := NewRepository(newTestDB(c), nil, nil)

	_, err := repo.GetFileByUID(context.Background(), uuid.Must(uuid.NewV4()))
	c.Check(err, qt.ErrorIs, errdomain.ErrNotFound)
}

func TestRepository_UpdateFileStatus(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo := NewRepository(newTestDB(c), nil, nil)

	c.Run("success sets page count", func(c *qt.C) {
		f, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)

		err = repo.UpdateFileStatus(ctx, f.UID, FileStatusUpdate{
			Status:    types.FileProcessStatusSuccess,
			Message:   "File processed.",
			PageCount: 3,
		})
		c.Assert(err, qt.IsNil)

		got, err := repo.GetFileByUID(ctx, f.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusSuccess)
		c.Check(got.StatusMessage, qt.Equals, "File processed.")
		c.Check(got.PageCount, qt.Equals, 3)
	})

	c.Run("repeating the terminal status is a no-op", func(c *qt.C) {
		f, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)

		failed := FileStatusUpdate{Status: types.FileProcessStatusFailed, Message: "first"}
		c.Assert(repo.UpdateFileStatus(ctx, f.UID, failed), qt.IsNil)

		failed.Message = "second"
		c.Assert(repo.UpdateFileStatus(ctx, f.UID, failed), qt.IsNil)

		got, err := repo.GetFileByUID(ctx, f.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(got.StatusMessage, qt.Equals, "first")
	})

	c.Run("terminal records don't change status", func(c *qt.C) {
		f, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)

		c.Assert(repo.UpdateFileStatus(ctx, f.UID, FileStatusUpdate{Status: types.FileProcessStatusFailed}), qt.IsNil)

		err = repo.UpdateFileStatus(ctx, f.UID, FileStatusUpdate{Status: types.FileProcessStatusSuccess})
		c.Check(err, qt.ErrorIs, errdomain.ErrStatusConflict)

		got, err := repo.GetFileByUID(ctx, f.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
	})

	c.Run("PROCESSING is not a valid target", func(c *qt.C) {
		f, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)

		err = repo.UpdateFileStatus(ctx, f.UID, FileStatusUpdate{Status: types.FileProcessStatusProcessing})
		c.Check(err, qt.ErrorIs, errdomain.ErrInvalidArgument)
	})

	c.Run("unknown record", func(c *qt.C) {
		err := repo.UpdateFileStatus(ctx, uuid.Must(uuid.NewV4()), FileStatusUpdate{Status: types.FileProcessStatusFailed})
		c.Check(err, qt.ErrorIs, errdomain.ErrNotFound)
	})

	c.Run("concurrent writers, one winner", func(c *qt.C) {
		f, err := repo.CreateFile(ctx, newTestFile())
		c.Assert(err, qt.IsNil)

		statuses := []types.FileProcessStatus{types.FileProcessStatusSuccess, types.FileProcessStatusFailed}
		errs := make([]error, len(statuses))
		var wg sync.WaitGroup
		for i, s := range statuses {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = repo.UpdateFileStatus(ctx, f.UID, FileStatusUpdate{Status: s})
			}()
		}
		wg.Wait()

		got, err := repo.GetFileByUID(ctx, f.UID)
		c.Assert(err, qt.IsNil)
		for i, s := range statuses {
			if s == got.Status {
				c.Check(errs[i], qt.IsNil)
			} else {
				c.Check(errs[i], qt.ErrorIs, errdomain.ErrStatusConflict)
			}
		}
	})
}

func TestRepository_ListStaleProcessingFiles(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo := NewRepository(newTestDB(c), nil, nil)

	now := time.Now().UTC()

	old := newTestFile()
	old.UpdateTime = now.Add(-time.Hour)
	oldFile, err := repo.CreateFile(ctx, old)
	c.Assert(err, qt.IsNil)

	older := newTestFile()
	older.UpdateTime = now.Add(-2 * time.Hour)
	olderFile, err := repo.CreateFile(ctx, older)
	c.Assert(err, qt.IsNil)

	// Stale but terminal.
	done := newTestFile()
	done.UpdateTime = now.Add(-time.Hour)
	doneFile, err := repo.CreateFile(ctx, done)
	c.Assert(err, qt.IsNil)
	err = markFailedAt(repo, doneFile.UID, now.Add(-time.Hour))
	c.Assert(err, qt.IsNil)

	_, err = repo.CreateFile(ctx, newTestFile())
	c.Assert(err, qt.IsNil)

	files, err := repo.ListStaleProcessingFiles(ctx, now.Add(-15*time.Minute), 10)
	c.Assert(err, qt.IsNil)
	c.Assert(files, qt.HasLen, 2)
	c.Check(files[0].UID, qt.Equals, olderFile.UID)
	c.Check(files[1].UID, qt.Equals, oldFile.UID)

	files, err = repo.ListStaleProcessingFiles(ctx, now.Add(-15*time.Minute), 1)
	c.Assert(err, qt.IsNil)
	c.Check(files, qt.HasLen, 1)
}

// markFailedAt moves the record to FAILED and backdates it.
func markFailedAt(repo Repository, uid types.FileUIDType, t time.Time) error {
	r := repo.(*repository)
	return r.db.Model(&FileModel{}).
		Where(FileColumn.UID+" = ?", uid).
		Updates(map[string]any{
			FileColumn.Status:     types.FileProcessStatusFailed,
			FileColumn.UpdateTime: t,
		}).Error
}
