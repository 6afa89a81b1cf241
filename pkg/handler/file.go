package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// maxEventSize bounds the body of an upload event.
const maxEventSize = 64 << 10

// AcceptedResponse is returned when an upload event is accepted.
type AcceptedResponse struct {
	Accepted bool   `json:"accepted"`
	FileKey  string `json:"fileKey"`
}

// CompleteUpload receives the event sent by the storage layer once a file
// has finished uploading and dispatches its ingestion.
func (h *PublicHandler) CompleteUpload(w http.ResponseWriter, r *http.Request) {
	log, _ := logger.GetZapLogger(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventSize+1))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: reading body: %w", errdomain.ErrInvalidArgument, err))
		return
	}
	if len(body) > maxEventSize {
		writeError(w, r, errorsx.AddMessage(
			fmt.Errorf("%w: body exceeds %d bytes", errdomain.ErrInvalidArgument, maxEventSize),
			"The upload event is too large.",
		))
		return
	}

	if h.webhookSecret != "" {
		if err := VerifySignature(h.webhookSecret, body, r.Header.Get(SignatureHeader)); err != nil {
			writeError(w, r, err)
			return
		}
	}

	var event types.UploadEvent
	if err := json.Unmarshal(body, &event); err != nil {
		writeError(w, r, errorsx.AddMessage(
			fmt.Errorf("%w: decoding event: %w", errdomain.ErrInvalidArgument, err),
			"The upload event is not valid JSON.",
		))
		return
	}
	if err := event.Validate(); err != nil {
		writeError(w, r, errorsx.AddMessage(
			fmt.Errorf("%w: %w", errdomain.ErrInvalidArgument, err),
			"The upload event is incomplete.",
		))
		return
	}

	if err := h.executor.Submit(r.Context(), event); err != nil {
		writeError(w, r, errorsx.AddMessage(err, "The upload can't be processed right now. Please try again."))
		return
	}

	log.Info("Upload event accepted",
		zap.String("fileKey", event.FileKey),
		zap.String("ownerUID", event.OwnerUID))
	writeJSON(w, http.StatusAccepted, AcceptedResponse{Accepted: true, FileKey: event.FileKey})
}

// FileResponse is the display view of an ingestion record.
type FileResponse struct {
	UID           string    `json:"uid"`
	Key           string    `json:"key"`
	Name          string    `json:"name"`
	OwnerUID      string    `json:"ownerId"`
	Status        string    `json:"status"`
	StatusMessage string    `json:"statusMessage,omitempty"`
	PageCount     int       `json:"pageCount"`
	CreateTime    time.Time `json:"createTime"`
}

func fileResponse(f *repository.FileModel) FileResponse {
	return FileResponse{
		UID:           f.UID.String(),
		Key:           f.Key,
		Name:          f.Name,
		OwnerUID:      f.OwnerUID,
		Status:        string(f.Status),
		StatusMessage: f.StatusMessage,
		PageCount:     f.PageCount,
		CreateTime:    f.CreateTime,
	}
}

// GetFile returns the ingestion record of a file.
func (h *PublicHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.FromString(chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, r, errorsx.AddMessage(
			fmt.Errorf("%w: file uid: %w", errdomain.ErrInvalidArgument, err),
			"The file ID is invalid.",
		))
		return
	}

	file, err := h.service.GetFile(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fileResponse(file))
}
