package object

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// DefaultMaxFileSize is the largest payload fetched when no limit is set.
const DefaultMaxFileSize int64 = 4 << 20

// Fetcher retrieves the raw bytes of a document from its location URL.
type Fetcher interface {
	// Fetch returns the whole payload. Any failure, including a missing
	// object or an oversized payload, is an ErrFetch.
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Router dispatches a location to the Fetcher registered for its scheme.
type Router struct {
	fetchers map[string]Fetcher
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{fetchers: map[string]Fetcher{}}
}

// Register serves the given URL schemes with f.
func (r *Router) Register(f Fetcher, schemes ...string) *Router {
	for _, s := range schemes {
		r.fetchers[strings.ToLower(s)] = f
	}
	return r
}

// Fetch implements Fetcher.
func (r *Router) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing location: %w", errdomain.ErrFetch, err)
	}

	f, ok := r.fetchers[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported location scheme %q", errdomain.ErrFetch, u.Scheme)
	}

	return f.Fetch(ctx, location)
}

// ParseObjectURI splits a bucket URI such as s3://bucket/path/to/key into its
// bucket and object path.
func ParseObjectURI(uri string) (bucket string, objectPath string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("URI must have the form <scheme>://<bucket>/<path>")
	}

	objectPath = strings.TrimPrefix(u.Path, "/")
	if objectPath == "" {
		return "", "", fmt.Errorf("URI has no object path")
	}

	return u.Host, objectPath, nil
}

// readAllLimited reads r until EOF and fails if more than limit bytes are
// available.
func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading payload: %w", errdomain.ErrFetch, err)
	}
	if int64(len(b)) > limit {
		return nil, tooLargeErr(limit)
	}
	return b, nil
}

func tooLargeErr(limit int64) error {
	return fmt.Errorf("%w: payload exceeds %d bytes", errdomain.ErrFetch, limit)
}
