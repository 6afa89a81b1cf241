package service

import (
	"context"
	"time"

	"github.com/talkifydocs/ingest-backend/pkg/ai"
	"github.com/talkifydocs/ingest-backend/pkg/parser"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/repository/object"
	"github.com/talkifydocs/ingest-backend/pkg/types"
)

// Service defines the ingestion use cases.
type Service interface {
	// Run executes a whole pipeline run for an upload event: it creates the
	// ingestion record, processes the file and records the terminal status.
	Run(context.Context, types.UploadEvent) (*repository.FileModel, error)
	// Start creates the ingestion record for an upload event.
	Start(context.Context, types.UploadEvent) (*repository.FileModel, error)
	// Process fetches, parses, embeds and indexes the file of a record. It
	// returns the number of parsed pages.
	Process(context.Context, *repository.FileModel) (int, error)
	// Finish moves the record to SUCCESS when runErr is nil and to FAILED
	// otherwise.
	Finish(ctx context.Context, fileUID types.FileUIDType, pageCount int, runErr error) error
	GetFile(context.Context, types.FileUIDType) (*repository.FileModel, error)

	Repository() repository.Repository
}

// Options tune the pipeline.
type Options struct {
	// LocationBaseURL is prefixed to the file key to build the fetch location.
	LocationBaseURL string
	// StepTimeout bounds each step of Process. Zero disables it.
	StepTimeout time.Duration
	// FinishTimeout bounds the terminal status write.
	FinishTimeout time.Duration
}

const defaultFinishTimeout = 30 * time.Second

type service struct {
	repository repository.Repository
	fetcher    object.Fetcher
	parser     parser.Parser
	embedder   ai.Embedder

	locationBaseURL string
	stepTimeout     time.Duration
	finishTimeout   time.Duration
}

// NewService initiates a service instance
func NewService(
	r repository.Repository,
	f object.Fetcher,
	p parser.Parser,
	e ai.Embedder,
	opts Options,
) Service {
	finishTimeout := opts.FinishTimeout
	if finishTimeout <= 0 {
		finishTimeout = defaultFinishTimeout
	}

	return &service{
		repository:      r,
		fetcher:         f,
		parser:          p,
		embedder:        e,
		locationBaseURL: opts.LocationBaseURL,
		stepTimeout:     opts.StepTimeout,
		finishTimeout:   finishTimeout,
	}
}

func (s *service) Repository() repository.Repository { return s.repository }

func (s *service) GetFile(ctx context.Context, fileUID types.FileUIDType) (*repository.FileModel, error) {
	return s.repository.GetFileByUID(ctx, fileUID)
}
