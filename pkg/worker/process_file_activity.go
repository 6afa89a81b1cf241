package worker

import (
	"context"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
)

// This file contains the pipeline activities used by ProcessUploadWorkflow:
// - CreateFileActivity - Creates the ingestion record
// - ProcessFileActivity - Fetches, parses, embeds and indexes the file

const (
	createFileActivityError  = "CreateFileActivity"
	processFileActivityError = "ProcessFileActivity"
)

// CreateFileActivityParam defines the parameters for the CreateFileActivity
type CreateFileActivityParam struct {
	Event types.UploadEvent
}

// CreateFileActivity creates the ingestion record of an upload. It isn't
// idempotent, so the workflow runs it once.
func (w *Worker) CreateFileActivity(ctx context.Context, param *CreateFileActivityParam) (*repository.FileModel, error) {
	w.log.Info("Creating ingestion record", zap.String("fileKey", param.Event.FileKey))

	file, err := w.service.Start(ctx, param.Event)
	if err != nil {
		err = errorsx.AddMessage(err, "Unable to register the uploaded file.")
		return nil, temporal.NewNonRetryableApplicationError(
			errorsx.MessageOrErr(err),
			createFileActivityError,
			err,
		)
	}

	return file, nil
}

// ProcessFileActivityParam defines the parameters for the ProcessFileActivity
type ProcessFileActivityParam struct {
	File repository.FileModel
}

// ProcessFileActivityResult is the outcome of a successful run.
type ProcessFileActivityResult struct {
	PageCount int
}

// ProcessFileActivity runs the fetch, parse, embed and index steps. A
// failure carries the status message of the record.
func (w *Worker) ProcessFileActivity(ctx context.Context, param *ProcessFileActivityParam) (*ProcessFileActivityResult, error) {
	w.log.Info("Processing file", zap.String("fileUID", param.File.UID.String()))

	pageCount, err := w.service.Process(ctx, &param.File)
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			service.StatusMessage(err),
			processFileActivityError,
			err,
		)
	}

	return &ProcessFileActivityResult{PageCount: pageCount}, nil
}
