package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	ingestmw "github.com/talkifydocs/ingest-backend/pkg/middleware"
)

// Executor runs the ingestion pipeline of an upload event in the
// background.
type Executor interface {
	Submit(context.Context, types.UploadEvent) error
}

// PublicHandler handles the public HTTP API.
type PublicHandler struct {
	service       service.Service
	executor      Executor
	webhookSecret string
}

// NewPublicHandler initiates a handler instance. An empty webhookSecret
// disables the signature check of upload events.
func NewPublicHandler(s service.Service, e Executor, webhookSecret string) *PublicHandler {
	return &PublicHandler{
		service:       s,
		executor:      e,
		webhookSecret: webhookSecret,
	}
}

// Router returns the routes of the public API.
func (h *PublicHandler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(ingestmw.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.Liveness)
		r.Post("/uploads:complete", h.CompleteUpload)
		r.Get("/files/{uid}", h.GetFile)
	})
	return r
}

// Liveness reports that the server is serving.
func (h *PublicHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "SERVING"})
}
