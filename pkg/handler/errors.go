package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps domain errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errdomain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errdomain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errdomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdomain.ErrStatusConflict):
		return http.StatusConflict
	case errors.Is(err, errdomain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes its status code and end-user message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log, _ := logger.GetZapLogger(r.Context())

	code := statusFromError(err)
	msg := errorsx.Message(err)
	if msg == "" {
		msg = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		log.Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		log.Info("Request rejected", zap.String("path", r.URL.Path), zap.Int("code", code), zap.Error(err))
	}

	writeJSON(w, code, ErrorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
