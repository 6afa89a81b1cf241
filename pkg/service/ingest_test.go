package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/gojuno/minimock/v3"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/mock"
	"github.com/talkifydocs/ingest-backend/pkg/parser"
	"github.com/talkifydocs/ingest-backend/pkg/parser/parsertest"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/repository/object"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

const dim = 3

// fakeEmbedder returns one vector per text unless drop or err are set.
type fakeEmbedder struct {
	err   error
	drop  int
	panic bool

	mu    sync.Mutex
	calls [][]string
}

func (f *fakeEmbedder) Name() string        { return "fake" }
func (f *fakeEmbedder) Dimensionality() int { return dim }

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls = append(f.calls, texts)
	f.mu.Unlock()

	if f.panic {
		panic("embedding provider exploded")
	}
	if f.err != nil {
		return nil, f.err
	}

	vectors := make([][]float32, 0, len(texts))
	for i := range texts {
		vectors = append(vectors, []float32{float32(i), 0.5, 0.5})
	}
	return vectors[:len(vectors)-f.drop], nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeIndex records upserts.
type fakeIndex struct {
	err error

	mu      sync.Mutex
	upserts []upsert
}

type upsert struct {
	namespace string
	items     []repository.VectorItem
}

func (f *fakeIndex) UpsertVectors(_ context.Context, namespace string, items []repository.VectorItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.upserts = append(f.upserts, upsert{namespace: namespace, items: items})
	return f.err
}

func (f *fakeIndex) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

func newTestDB(c *qt.C) *gorm.DB {
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
	return db
}

// newStorage serves the objects under their key and 404 for anything else.
func newStorage(c *qt.C, objects map[string][]byte) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := objects[r.URL.Path[1:]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(data)
	}))
	c.Cleanup(srv.Close)
	return srv
}

type testEnv struct {
	svc      service.Service
	repo     repository.Repository
	embedder *fakeEmbedder
	index    *fakeIndex
}

type envOption func(*envConfig)

type envConfig struct {
	fetcher     object.Fetcher
	stepTimeout time.Duration
}

func newEnv(c *qt.C, objects map[string][]byte, embedder *fakeEmbedder, index *fakeIndex, opts ...envOption) testEnv {
	srv := newStorage(c, objects)
	cfg := envConfig{fetcher: object.NewHTTPFetcher(srv.Client(), 5*time.Second, object.DefaultMaxFileSize)}
	for _, o := range opts {
		o(&cfg)
	}

	repo := repository.NewRepository(newTestDB(c), index, nil)
	svc := service.NewService(repo, cfg.fetcher, parser.NewPDFParser(), embedder, service.Options{
		LocationBaseURL: srv.URL + "/",
		StepTimeout:     cfg.stepTimeout,
	})
	return testEnv{svc: svc, repo: repo, embedder: embedder, index: index}
}

func uploadEvent(key string) types.UploadEvent {
	return types.UploadEvent{FileKey: key, FileName: "report.pdf", OwnerUID: "kp_42"}
}

func TestService_Run(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	threePages := parsertest.BuildPDF("Quarterly revenue grew.", "Costs were flat.", "Outlook is positive.")

	c.Run("scenario A: every step succeeds", func(c *qt.C) {
		env := newEnv(c, map[string][]byte{"abc-report.pdf": threePages}, &fakeEmbedder{}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("abc-report.pdf"))
		c.Assert(err, qt.IsNil)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusSuccess)
		c.Check(got.PageCount, qt.Equals, 3)
		c.Check(got.StatusMessage, qt.Equals, "")
		c.Check(got.OwnerUID, qt.Equals, "kp_42")
		c.Check(got.LocationURL, qt.Matches, `http://127\.0\.0\.1:\d+/abc-report\.pdf`)

		c.Assert(env.index.upserts, qt.HasLen, 1)
		up := env.index.upserts[0]
		c.Check(up.namespace, qt.Equals, file.UID.String())
		c.Assert(up.items, qt.HasLen, 3)
		wantTexts := []string{"Quarterly revenue grew.", "Costs were flat.", "Outlook is positive."}
		for i, item := range up.items {
			c.Check(item.PageIndex, qt.Equals, i)
			c.Check(item.Text, qt.Equals, wantTexts[i])
			c.Check(item.OwnerUID, qt.Equals, "kp_42")
			c.Check(item.SourceFileUID, qt.Equals, file.UID)
			c.Check(item.ID, qt.Equals, repository.VectorItemID(file.UID, i))
			c.Check(item.Vector, qt.DeepEquals, []float32{float32(i), 0.5, 0.5})
		}
	})

	c.Run("scenario B: fetch returns 404", func(c *qt.C) {
		env := newEnv(c, nil, &fakeEmbedder{}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("missing.pdf"))
		c.Assert(errors.Is(err, errdomain.ErrFetch), qt.IsTrue)

		var stepErr *service.StepError
		c.Assert(errors.As(err, &stepErr), qt.IsTrue)
		c.Check(stepErr.State, qt.Equals, service.StateRecordCreated)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(got.StatusMessage, qt.Not(qt.Equals), "")
		c.Check(env.embedder.callCount(), qt.Equals, 0)
		c.Check(env.index.callCount(), qt.Equals, 0)
	})

	c.Run("scenario C: embedder drops a vector", func(c *qt.C) {
		env := newEnv(c, map[string][]byte{"k.pdf": threePages}, &fakeEmbedder{drop: 1}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(got.StatusMessage, qt.Equals, "Embeddings could not be generated for the file.")
		c.Check(env.index.callCount(), qt.Equals, 0)
	})

	c.Run("scenario D: index write fails", func(c *qt.C) {
		index := &fakeIndex{err: fmt.Errorf("%w: partial upsert", errdomain.ErrIndexWrite)}
		env := newEnv(c, map[string][]byte{"k.pdf": threePages}, &fakeEmbedder{}, index)

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, errdomain.ErrIndexWrite), qt.IsTrue)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(got.StatusMessage, qt.Equals, "The file could not be indexed for search.")
		c.Check(got.PageCount, qt.Equals, 0)
	})

	c.Run("not a PDF", func(c *qt.C) {
		env := newEnv(c, map[string][]byte{"k.pdf": []byte("hello")}, &fakeEmbedder{}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, errdomain.ErrParse), qt.IsTrue)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(env.embedder.callCount(), qt.Equals, 0)
	})

	c.Run("blank pages are skipped", func(c *qt.C) {
		pdf := parsertest.BuildPDF("First page.", "", "Third page.")
		env := newEnv(c, map[string][]byte{"k.pdf": pdf}, &fakeEmbedder{}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(err, qt.IsNil)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.PageCount, qt.Equals, 3)

		c.Assert(env.index.upserts, qt.HasLen, 1)
		items := env.index.upserts[0].items
		c.Assert(items, qt.HasLen, 2)
		c.Check(items[0].PageIndex, qt.Equals, 0)
		c.Check(items[1].PageIndex, qt.Equals, 2)
	})

	c.Run("document without text", func(c *qt.C) {
		pdf := parsertest.BuildPDF("", "")
		env := newEnv(c, map[string][]byte{"k.pdf": pdf}, &fakeEmbedder{}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, errdomain.ErrParse), qt.IsTrue)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(got.StatusMessage, qt.Equals, "The document contains no extractable text.")
	})

	c.Run("panic in a step fails the record", func(c *qt.C) {
		env := newEnv(c, map[string][]byte{"k.pdf": threePages}, &fakeEmbedder{panic: true}, &fakeIndex{})

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(err, qt.ErrorMatches, "pipeline failed after PARSED: panic: embedding provider exploded")

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
		c.Check(env.index.callCount(), qt.Equals, 0)
	})

	c.Run("step timeout fails the record", func(c *qt.C) {
		blocking := mock.NewFetcherMock(minimock.NewController(c)).
			FetchMock.Set(func(ctx context.Context, _ string) ([]byte, error) {
				<-ctx.Done()
				return nil, fmt.Errorf("%w: %w", errdomain.ErrFetch, ctx.Err())
			})
		env := newEnv(c, nil, &fakeEmbedder{}, &fakeIndex{}, func(cfg *envConfig) {
			cfg.fetcher = blocking
			cfg.stepTimeout = 20 * time.Millisecond
		})

		file, err := env.svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, context.DeadlineExceeded), qt.IsTrue)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
	})

	c.Run("cancelled run still records FAILED", func(c *qt.C) {
		runCtx, cancel := context.WithCancel(ctx)
		cancelling := mock.NewFetcherMock(minimock.NewController(c)).
			FetchMock.Set(func(context.Context, string) ([]byte, error) {
				cancel()
				return nil, fmt.Errorf("%w: %w", errdomain.ErrFetch, context.Canceled)
			})
		env := newEnv(c, nil, &fakeEmbedder{}, &fakeIndex{}, func(cfg *envConfig) {
			cfg.fetcher = cancelling
		})

		file, err := env.svc.Run(runCtx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, context.Canceled), qt.IsTrue)

		got, err := env.repo.GetFileByUID(ctx, file.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.Status, qt.Equals, types.FileProcessStatusFailed)
	})

	c.Run("record creation fails", func(c *qt.C) {
		mc := minimock.NewController(c)
		repo := mock.NewRepositoryMock(mc).
			CreateFileMock.Return(nil, fmt.Errorf("%w: connection refused", errdomain.ErrRecordStore))
		svc := service.NewService(repo, mock.NewFetcherMock(mc), parser.NewPDFParser(), mock.NewEmbedderMock(mc), service.Options{})

		file, err := svc.Run(ctx, uploadEvent("k.pdf"))
		c.Assert(errors.Is(err, errdomain.ErrRecordStore), qt.IsTrue)
		c.Check(file, qt.IsNil)
	})

	c.Run("invalid event", func(c *qt.C) {
		env := newEnv(c, nil, &fakeEmbedder{}, &fakeIndex{})

		file, err := env.svc.Run(ctx, types.UploadEvent{FileKey: "k.pdf"})
		c.Assert(errors.Is(err, errdomain.ErrInvalidArgument), qt.IsTrue)
		c.Check(errorsx.Message(err), qt.Equals, "The upload event is incomplete.")
		c.Check(file, qt.IsNil)
	})
}

func TestService_Finish(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	env := newEnv(c, nil, &fakeEmbedder{}, &fakeIndex{})
	file, err := env.svc.Start(ctx, uploadEvent("k.pdf"))
	c.Assert(err, qt.IsNil)
	c.Check(file.Status, qt.Equals, types.FileProcessStatusProcessing)

	c.Assert(env.svc.Finish(ctx, file.UID, 4, nil), qt.IsNil)
	// Idempotent.
	c.Assert(env.svc.Finish(ctx, file.UID, 4, nil), qt.IsNil)

	got, err := env.svc.GetFile(ctx, file.UID)
	c.Assert(err, qt.IsNil)
	c.Check(got.Status, qt.Equals, types.FileProcessStatusSuccess)
	c.Check(got.PageCount, qt.Equals, 4)

	// A terminal record doesn't move to a different status.
	err = env.svc.Finish(ctx, file.UID, 0, errors.New("late failure"))
	c.Check(errors.Is(err, errdomain.ErrStatusConflict), qt.IsTrue)
}

func TestStatusMessage(t *testing.T) {
	c := qt.New(t)

	testcases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "user message wins",
			err:  &service.StepError{State: service.StateParsed, Err: errorsx.AddMessage(errors.New("quota"), "Quota exceeded.")},
			want: "Quota exceeded.",
		},
		{
			name: "fetch",
			err:  &service.StepError{State: service.StateRecordCreated, Err: errdomain.ErrFetch},
			want: "The file could not be retrieved from storage.",
		},
		{
			name: "parse",
			err:  &service.StepError{State: service.StateFetched, Err: errdomain.ErrParse},
			want: "The file could not be read as a PDF document.",
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: "Processing failed. Please upload the file again.",
		},
	}

	for _, tc := range testcases {
		c.Run(tc.name, func(c *qt.C) {
			c.Check(service.StatusMessage(tc.err), qt.Equals, tc.want)
		})
	}
}

func TestLocationURL(t *testing.T) {
	c := qt.New(t)

	c.Check(service.LocationURL("https://uploads.example.com", "abc.pdf"), qt.Equals, "https://uploads.example.com/abc.pdf")
	c.Check(service.LocationURL("https://uploads.example.com/", "/abc.pdf"), qt.Equals, "https://uploads.example.com/abc.pdf")
	c.Check(service.LocationURL("https://uploads.example.com", "u1/q4 report?#1.pdf"), qt.Equals,
		"https://uploads.example.com/u1/q4%20report%3F%231.pdf")
}
