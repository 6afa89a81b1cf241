package worker

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

const updateFileStatusActivityError = "UpdateFileStatusActivity"

// UpdateFileStatusActivityParam defines the parameters for the UpdateFileStatusActivity
type UpdateFileStatusActivityParam struct {
	FileUID   types.FileUIDType // File unique identifier
	Failed    bool              // Whether the run failed
	PageCount int               // Parsed pages, on success
	Message   string            // Status message for display, on failure
}

// UpdateFileStatusActivity records the terminal status of a run. The write
// is idempotent, so the activity is retried.
func (w *Worker) UpdateFileStatusActivity(ctx context.Context, param *UpdateFileStatusActivityParam) error {
	w.log.Info("Updating file status",
		zap.String("fileUID", param.FileUID.String()),
		zap.Bool("failed", param.Failed),
		zap.String("message", param.Message))

	var runErr error
	if param.Failed {
		runErr = errorsx.AddMessage(errors.New("file processing failed"), param.Message)
	}

	err := w.service.Finish(ctx, param.FileUID, param.PageCount, runErr)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errdomain.ErrStatusConflict), errors.Is(err, errdomain.ErrNotFound):
		// Retrying won't change the outcome.
		return temporal.NewNonRetryableApplicationError(
			"File status can't be updated.",
			updateFileStatusActivityError,
			err,
		)
	default:
		err = errorsx.AddMessage(err, "Unable to update file status. Please try again.")
		return temporal.NewApplicationErrorWithCause(
			errorsx.MessageOrErr(err),
			updateFileStatusActivityError,
			err,
		)
	}
}
