package object

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

type httpFetcher struct {
	client      *http.Client
	maxFileSize int64
}

// NewHTTPFetcher returns a Fetcher for http(s) locations. The timeout bounds
// each request and maxFileSize the accepted payload.
func NewHTTPFetcher(client *http.Client, timeout time.Duration, maxFileSize int64) Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	c := *client
	c.Timeout = timeout

	return &httpFetcher{
		client:      &c,
		maxFileSize: maxFileSize,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	log, _ := logger.GetZapLogger(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", errdomain.ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: requesting document: %w", errdomain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", errdomain.ErrFetch, resp.Status)
	}
	if f.maxFileSize > 0 && resp.ContentLength > f.maxFileSize {
		return nil, tooLargeErr(f.maxFileSize)
	}

	b, err := readAllLimited(resp.Body, f.maxFileSize)
	if err != nil {
		return nil, err
	}

	log.Debug("Document fetched", zap.String("location", location), zap.Int("size", len(b)))
	return b, nil
}
