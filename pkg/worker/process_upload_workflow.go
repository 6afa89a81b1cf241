package worker

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/types"
)

// interruptedMessage is stored when a run stops before reaching a terminal
// status.
const interruptedMessage = "Processing was interrupted. Please upload the file again."

// ProcessUploadWorkflowParam defines the parameters for ProcessUploadWorkflow
type ProcessUploadWorkflowParam struct {
	Event types.UploadEvent
}

type processUploadWorkflow struct {
	temporalClient client.Client
	worker         *Worker
}

// NewProcessUploadWorkflow creates a new ProcessUploadWorkflow starter. It
// implements the executor of the upload webhook.
func NewProcessUploadWorkflow(temporalClient client.Client, worker *Worker) *processUploadWorkflow {
	return &processUploadWorkflow{
		temporalClient: temporalClient,
		worker:         worker,
	}
}

// WorkflowID is the ID of the run of an uploaded object. A redelivered event
// maps to the same workflow.
func WorkflowID(fileKey string) string {
	return fmt.Sprintf("process-upload-%s", fileKey)
}

// StartOptions returns the options ProcessUploadWorkflow is started with.
// The workflow has no execution or run timeout: when the server times a
// workflow out, its deferred FAILED write never runs. The activity timeouts
// and the bounded status retries limit the duration of a run.
func StartOptions(event types.UploadEvent) client.StartWorkflowOptions {
	return client.StartWorkflowOptions{
		ID:                    WorkflowID(event.FileKey),
		TaskQueue:             TaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}
}

// Submit starts ProcessUploadWorkflow for the event.
func (w *processUploadWorkflow) Submit(ctx context.Context, event types.UploadEvent) error {
	_, err := w.temporalClient.ExecuteWorkflow(ctx, StartOptions(event), w.worker.ProcessUploadWorkflow, ProcessUploadWorkflowParam{Event: event})
	var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &alreadyStarted) {
		return nil
	}
	return err
}

// ProcessUploadWorkflow runs the ingestion pipeline of an uploaded file:
// 1. CreateFileActivity creates the record in PROCESSING status.
// 2. ProcessFileActivity fetches, parses, embeds and indexes the file.
// 3. UpdateFileStatusActivity moves the record to SUCCESS or FAILED.
//
// Only the last activity is retried. If the workflow stops after the record
// was created and before step 3 completed, the record is marked as FAILED.
func (w *Worker) ProcessUploadWorkflow(ctx workflow.Context, param ProcessUploadWorkflowParam) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting ProcessUploadWorkflow", "fileKey", param.Event.FileKey)

	noRetry := &temporal.RetryPolicy{MaximumAttempts: 1}
	statusOptions := workflow.ActivityOptions{
		StartToCloseTimeout: ActivityTimeoutStandard,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    RetryInitialInterval,
			BackoffCoefficient: RetryBackoffCoefficient,
			MaximumInterval:    RetryMaximumIntervalStandard,
			MaximumAttempts:    RetryMaximumAttempts,
		},
	}

	createCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: ActivityTimeoutStandard,
		RetryPolicy:         noRetry,
	})

	var file repository.FileModel
	if err := workflow.ExecuteActivity(createCtx, w.CreateFileActivity, &CreateFileActivityParam{Event: param.Event}).Get(ctx, &file); err != nil {
		logger.Error("Failed to create ingestion record", "error", err)
		return err
	}

	completed := false
	defer func() {
		if completed {
			return
		}

		// Use disconnected context so this runs even if workflow is cancelled
		cleanupCtx, _ := workflow.NewDisconnectedContext(ctx)
		cleanupCtx = workflow.WithActivityOptions(cleanupCtx, statusOptions)

		logger.Warn("Workflow did not complete, marking file as FAILED", "fileUID", file.UID.String())
		// Best effort
		_ = workflow.ExecuteActivity(cleanupCtx, w.UpdateFileStatusActivity, &UpdateFileStatusActivityParam{
			FileUID: file.UID,
			Failed:  true,
			Message: interruptedMessage,
		}).Get(cleanupCtx, nil)
	}()

	processCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: ActivityTimeoutLong,
		RetryPolicy:         noRetry,
	})

	var result ProcessFileActivityResult
	processErr := workflow.ExecuteActivity(processCtx, w.ProcessFileActivity, &ProcessFileActivityParam{File: file}).Get(ctx, &result)

	statusParam := &UpdateFileStatusActivityParam{
		FileUID:   file.UID,
		PageCount: result.PageCount,
	}
	if processErr != nil {
		logger.Error("File processing failed", "fileUID", file.UID.String(), "error", processErr)
		statusParam = &UpdateFileStatusActivityParam{
			FileUID: file.UID,
			Failed:  true,
			Message: failureMessage(processErr),
		}
	}

	statusCtx := workflow.WithActivityOptions(ctx, statusOptions)
	if err := workflow.ExecuteActivity(statusCtx, w.UpdateFileStatusActivity, statusParam).Get(ctx, nil); err != nil {
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.NonRetryable() {
			// The record is already terminal.
			completed = true
		}
		logger.Error("Failed to record file status", "fileUID", file.UID.String(), "error", err)
		return err
	}
	completed = true

	logger.Info("ProcessUploadWorkflow completed",
		"fileUID", file.UID.String(),
		"failed", processErr != nil)
	return processErr
}

// failureMessage returns the status message carried by an activity error.
func failureMessage(err error) string {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}
	return interruptedMessage
}
