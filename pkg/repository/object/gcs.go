package object

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/talkifydocs/ingest-backend/pkg/logger"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

type gcsFetcher struct {
	client      *storage.Client
	maxFileSize int64
}

// NewGCSClient creates a Google Cloud Storage client. saKey is the JSON service
// account key, possibly wrapped in a Vault response. An empty key uses the
// application default credentials.
func NewGCSClient(ctx context.Context, saKey string) (*storage.Client, error) {
	var opts []option.ClientOption
	if saKey = strings.TrimSpace(saKey); saKey != "" {
		key, err := unwrapServiceAccountKey([]byte(saKey))
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(key))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}
	return client, nil
}

// unwrapServiceAccountKey extracts the key from a Vault response (data.data)
// and returns any other input unchanged.
func unwrapServiceAccountKey(key []byte) ([]byte, error) {
	var vault struct {
		Data struct {
			Data map[string]any `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(key, &vault); err != nil || vault.Data.Data == nil {
		return key, nil
	}

	unwrapped, err := json.Marshal(vault.Data.Data)
	if err != nil {
		return nil, fmt.Errorf("marshalling service account key: %w", err)
	}
	return unwrapped, nil
}

// NewGCSFetcher returns a Fetcher for gs://bucket/object locations.
func NewGCSFetcher(client *storage.Client, maxFileSize int64) Fetcher {
	return &gcsFetcher{
		client:      client,
		maxFileSize: maxFileSize,
	}
}

func (g *gcsFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	log, _ := logger.GetZapLogger(ctx)

	bucket, objectPath, err := ParseObjectURI(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdomain.ErrFetch, err)
	}

	reader, err := g.client.Bucket(bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: object %s not found", errdomain.ErrFetch, location)
		}
		return nil, fmt.Errorf("%w: reading GCS object: %w", errdomain.ErrFetch, err)
	}
	defer reader.Close()

	if g.maxFileSize > 0 && reader.Attrs.Size > g.maxFileSize {
		return nil, tooLargeErr(g.maxFileSize)
	}

	b, err := readAllLimited(reader, g.maxFileSize)
	if err != nil {
		return nil, err
	}

	log.Debug("Document fetched from GCS",
		zap.String("bucket", bucket),
		zap.String("object", objectPath),
		zap.Int("size", len(b)))
	return b, nil
}
