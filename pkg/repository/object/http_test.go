package object

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/doc.pdf", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4"))
	})
	mux.HandleFunc("/big.pdf", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	})
	mux.HandleFunc("/streamed.pdf", func(w http.ResponseWriter, _ *http.Request) {
		// Flushing before writing the body drops the Content-Length header.
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	})
	mux.HandleFunc("/slow.pdf", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	})
	srv := httptest.NewServer(mux)
	c.Cleanup(srv.Close)

	f := NewHTTPFetcher(srv.Client(), 100*time.Millisecond, 32)

	c.Run("ok", func(c *qt.C) {
		b, err := f.Fetch(ctx, srv.URL+"/doc.pdf")
		c.Assert(err, qt.IsNil)
		c.Check(string(b), qt.Equals, "%PDF-1.4")
	})

	c.Run("nok - not found", func(c *qt.C) {
		_, err := f.Fetch(ctx, srv.URL+"/missing.pdf")
		c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
		c.Check(err, qt.ErrorMatches, ".*unexpected status 404 Not Found")
	})

	c.Run("nok - declared size too large", func(c *qt.C) {
		_, err := f.Fetch(ctx, srv.URL+"/big.pdf")
		c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
		c.Check(err, qt.ErrorMatches, ".*payload exceeds 32 bytes")
	})

	c.Run("nok - streamed size too large", func(c *qt.C) {
		_, err := f.Fetch(ctx, srv.URL+"/streamed.pdf")
		c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
		c.Check(err, qt.ErrorMatches, ".*payload exceeds 32 bytes")
	})

	c.Run("nok - timeout", func(c *qt.C) {
		_, err := f.Fetch(ctx, srv.URL+"/slow.pdf")
		c.Check(err, qt.ErrorIs, errdomain.ErrFetch)
	})
}
