package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLogger(t *testing.T) {
	c := qt.New(t)

	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	c.Check(rec.Code, qt.Equals, http.StatusTeapot)
	c.Check(rec.Body.String(), qt.Equals, "short and stout")
}
