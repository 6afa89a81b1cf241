package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/ai"
	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/parser"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// IngestState is a state of the pipeline run.
type IngestState string

// Pipeline states, in order. A run can leave any state between
// StateRecordCreated and StateIndexed to StateFailed.
const (
	StateStarted       IngestState = "STARTED"
	StateRecordCreated IngestState = "RECORD_CREATED"
	StateFetched       IngestState = "FETCHED"
	StateParsed        IngestState = "PARSED"
	StateEmbedded      IngestState = "EMBEDDED"
	StateIndexed       IngestState = "INDEXED"
	StateSucceeded     IngestState = "SUCCEEDED"
	StateFailed        IngestState = "FAILED"
)

// StepError is returned when a pipeline step fails. State is the last state
// the run reached.
type StepError struct {
	State IngestState
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("pipeline failed after %s: %v", e.State, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Status messages stored when a step fails without a more specific message.
var failureMessages = map[IngestState]string{
	StateRecordCreated: "The file could not be retrieved from storage.",
	StateFetched:       "The file could not be read as a PDF document.",
	StateParsed:        "Embeddings could not be generated for the file.",
	StateEmbedded:      "The file could not be indexed for search.",
}

const defaultFailureMessage = "Processing failed. Please upload the file again."

// StatusMessage returns the message stored along with a FAILED status.
func StatusMessage(err error) string {
	if msg := errorsx.Message(err); msg != "" {
		return msg
	}

	var stepErr *StepError
	if errors.As(err, &stepErr) {
		if msg, ok := failureMessages[stepErr.State]; ok {
			return msg
		}
	}
	return defaultFailureMessage
}

// LocationURL builds the fetch location of an uploaded object. Every segment
// of the key is path-escaped, so that characters like '?', '#' or spaces
// stay part of the object name.
func LocationURL(baseURL, fileKey string) string {
	segments := strings.Split(strings.TrimLeft(fileKey, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.Join(segments, "/")
}

func (s *service) Run(ctx context.Context, event types.UploadEvent) (*repository.FileModel, error) {
	file, err := s.Start(ctx, event)
	if err != nil {
		return nil, err
	}

	pageCount, runErr := s.Process(ctx, file)
	if err := s.Finish(ctx, file.UID, pageCount, runErr); err != nil {
		return file, errors.Join(runErr, err)
	}

	return file, runErr
}

func (s *service) Start(ctx context.Context, event types.UploadEvent) (*repository.FileModel, error) {
	log, _ := logger.GetZapLogger(ctx)

	if err := event.Validate(); err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("%w: %w", errdomain.ErrInvalidArgument, err),
			"The upload event is incomplete.",
		)
	}

	file, err := s.repository.CreateFile(ctx, repository.FileModel{
		Key:         event.FileKey,
		Name:        event.FileName,
		OwnerUID:    event.OwnerUID,
		LocationURL: LocationURL(s.locationBaseURL, event.FileKey),
	})
	if err != nil {
		return nil, fmt.Errorf("creating ingestion record: %w", err)
	}

	log.Info("Ingestion record created",
		zap.String("fileUID", file.UID.String()),
		zap.String("fileKey", file.Key),
		zap.String("ownerUID", file.OwnerUID))

	return file, nil
}

func (s *service) Process(ctx context.Context, file *repository.FileModel) (pageCount int, err error) {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("fileUID", file.UID.String()))

	state := StateRecordCreated
	defer func() {
		if r := recover(); r != nil {
			log.Error("Pipeline step panicked",
				zap.String("state", string(state)),
				zap.Any("panic", r),
				zap.Stack("stack"))
			err = &StepError{State: state, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	var data []byte
	err = s.runStep(ctx, func(ctx context.Context) (err error) {
		data, err = s.fetcher.Fetch(ctx, file.LocationURL)
		return err
	})
	if err != nil {
		return 0, &StepError{State: state, Err: err}
	}
	state = StateFetched
	log.Info("File fetched", zap.Int("bytes", len(data)))

	var pages []parser.Page
	err = s.runStep(ctx, func(ctx context.Context) (err error) {
		pages, err = s.parser.Parse(ctx, file.UID, data)
		return err
	})
	if err != nil {
		return 0, &StepError{State: state, Err: err}
	}

	contentPages := make([]parser.Page, 0, len(pages))
	for _, p := range pages {
		if !p.IsBlank() {
			contentPages = append(contentPages, p)
		}
	}
	if len(contentPages) == 0 {
		err := errorsx.AddMessage(
			fmt.Errorf("%w: no extractable text in %d pages", errdomain.ErrParse, len(pages)),
			"The document contains no extractable text.",
		)
		return 0, &StepError{State: state, Err: err}
	}
	state = StateParsed
	log.Info("File parsed",
		zap.Int("pages", len(pages)),
		zap.Int("blankPages", len(pages)-len(contentPages)))

	texts := make([]string, len(contentPages))
	for i, p := range contentPages {
		texts[i] = p.Text
	}

	var vectors [][]float32
	err = s.runStep(ctx, func(ctx context.Context) (err error) {
		vectors, err = s.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}
		return ai.ValidateEmbeddings(vectors, len(texts), s.embedder.Dimensionality())
	})
	if err != nil {
		return 0, &StepError{State: state, Err: err}
	}
	state = StateEmbedded

	items := make([]repository.VectorItem, len(contentPages))
	for i, p := range contentPages {
		items[i] = repository.VectorItem{
			ID:            repository.VectorItemID(file.UID, p.PageIndex),
			Vector:        vectors[i],
			Text:          p.Text,
			OwnerUID:      file.OwnerUID,
			SourceFileUID: file.UID,
			PageIndex:     p.PageIndex,
		}
	}

	err = s.runStep(ctx, func(ctx context.Context) error {
		return s.repository.UpsertVectors(ctx, file.UID.String(), items)
	})
	if err != nil {
		return 0, &StepError{State: state, Err: err}
	}
	log.Info("Pages indexed", zap.Int("items", len(items)))

	return len(pages), nil
}

// runStep applies the step timeout to a pipeline step.
func (s *service) runStep(ctx context.Context, step func(context.Context) error) error {
	if s.stepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.stepTimeout)
		defer cancel()
	}

	err := step(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("step timed out after %s: %w", s.stepTimeout, err)
	}
	return err
}

func (s *service) Finish(ctx context.Context, fileUID types.FileUIDType, pageCount int, runErr error) error {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("fileUID", fileUID.String()))

	update := repository.FileStatusUpdate{
		Status:    types.FileProcessStatusSuccess,
		PageCount: pageCount,
	}
	if runErr != nil {
		update = repository.FileStatusUpdate{
			Status:  types.FileProcessStatusFailed,
			Message: StatusMessage(runErr),
		}
	}

	// The run may have been cancelled, the record must still be written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.finishTimeout)
	defer cancel()

	if err := s.repository.UpdateFileStatus(ctx, fileUID, update); err != nil {
		if update.Status == types.FileProcessStatusFailed {
			log.Error("Failed to mark file as FAILED, record may be stuck in PROCESSING",
				zap.Error(err),
				zap.NamedError("runError", runErr))
		} else {
			log.Error("Failed to mark file as SUCCESS", zap.Error(err))
		}
		return fmt.Errorf("recording %s status: %w", update.Status, err)
	}

	if runErr != nil {
		log.Warn("File processing failed",
			zap.Error(runErr),
			zap.String("statusMessage", update.Message))
		return nil
	}

	log.Info("File processing succeeded", zap.Int("pageCount", pageCount))
	return nil
}
