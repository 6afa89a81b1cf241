package object

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/config"
	"github.com/talkifydocs/ingest-backend/pkg/logger"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

type minioFetcher struct {
	client      *minio.Client
	maxFileSize int64
}

// NewMinIOClient connects to the MinIO (or any S3-compatible) endpoint in cfg.
func NewMinIOClient(cfg config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Host+":"+cfg.Port, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to MinIO: %w", err)
	}
	return client, nil
}

// NewMinIOFetcher returns a Fetcher for s3://bucket/key and minio://bucket/key
// locations.
func NewMinIOFetcher(client *minio.Client, maxFileSize int64) Fetcher {
	return &minioFetcher{
		client:      client,
		maxFileSize: maxFileSize,
	}
}

func (m *minioFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	log, _ := logger.GetZapLogger(ctx)

	bucket, objectName, err := ParseObjectURI(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdomain.ErrFetch, err)
	}

	info, err := m.client.StatObject(ctx, bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: object %s not found", errdomain.ErrFetch, location)
		}
		return nil, fmt.Errorf("%w: reading object info: %w", errdomain.ErrFetch, err)
	}
	if m.maxFileSize > 0 && info.Size > m.maxFileSize {
		return nil, tooLargeErr(m.maxFileSize)
	}

	object, err := m.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: getting object: %w", errdomain.ErrFetch, err)
	}
	defer object.Close()

	b, err := readAllLimited(object, m.maxFileSize)
	if err != nil {
		return nil, err
	}

	log.Debug("Document fetched from MinIO",
		zap.String("bucket", bucket),
		zap.String("object", objectName),
		zap.Int("size", len(b)))
	return b, nil
}
