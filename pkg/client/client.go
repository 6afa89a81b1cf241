// Package client builds the external clients of the ingestion pipeline from
// the configuration: the vector index, the document fetcher and the embedding
// provider.
package client

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/config"
	"github.com/talkifydocs/ingest-backend/pkg/ai"
	"github.com/talkifydocs/ingest-backend/pkg/ai/gemini"
	"github.com/talkifydocs/ingest-backend/pkg/ai/openai"
	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/repository/object"
)

// Vector index providers.
const (
	VectorIndexMilvus   = "milvus"
	VectorIndexWeaviate = "weaviate"
)

func noopClose() error { return nil }

// NewVectorIndex connects to the configured vector index. The returned
// function closes the connection.
func NewVectorIndex(ctx context.Context, cfg config.VectorIndexConfig, dimensionality int) (repository.VectorIndex, func() error, error) {
	switch cfg.Provider {
	case VectorIndexMilvus, "":
		return repository.NewMilvusIndex(ctx, cfg.Milvus.Host, cfg.Milvus.Port, cfg.Milvus.Collection, dimensionality)
	case VectorIndexWeaviate:
		idx, err := repository.NewWeaviateIndex(ctx, repository.WeaviateConfig{
			Host:   cfg.Weaviate.Host,
			Scheme: cfg.Weaviate.Scheme,
			APIKey: cfg.Weaviate.APIKey,
			Class:  cfg.Weaviate.Class,
		}, dimensionality)
		if err != nil {
			return nil, nil, err
		}
		return idx, noopClose, nil
	default:
		return nil, nil, fmt.Errorf("unsupported vector index provider %q", cfg.Provider)
	}
}

// NewFetcher returns a fetcher for every location scheme the configuration
// allows. HTTP(S) is always served. MinIO serves s3:// and minio:// when a
// host is configured, GCS serves gs:// when a project is configured. The
// returned function releases the clients.
func NewFetcher(ctx context.Context, cfg config.AppConfig) (object.Fetcher, func() error, error) {
	log, _ := logger.GetZapLogger(ctx)

	maxFileSize := cfg.Ingest.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = object.DefaultMaxFileSize
	}

	router := object.NewRouter().
		Register(object.NewHTTPFetcher(http.DefaultClient, cfg.Ingest.FetchTimeout, maxFileSize), "http", "https")
	closeFn := noopClose

	if cfg.Minio.Host != "" {
		mc, err := object.NewMinIOClient(cfg.Minio)
		if err != nil {
			return nil, nil, err
		}
		router.Register(object.NewMinIOFetcher(mc, maxFileSize), "s3", "minio")
		log.Info("MinIO fetcher registered", zap.String("host", cfg.Minio.Host))
	}

	if cfg.GCS.ProjectID != "" {
		gc, err := object.NewGCSClient(ctx, cfg.GCS.SAKey)
		if err != nil {
			return nil, nil, err
		}
		router.Register(object.NewGCSFetcher(gc, maxFileSize), "gs")
		closeFn = gc.Close
		log.Info("GCS fetcher registered", zap.String("project", cfg.GCS.ProjectID))
	}

	return router, closeFn, nil
}

// NewEmbedder returns the configured embedding provider. Requests are split
// in batches that honour the configured limits.
func NewEmbedder(ctx context.Context, cfg config.EmbeddingConfig) (ai.Embedder, error) {
	var (
		e   ai.Embedder
		err error
	)

	switch cfg.Provider {
	case ai.ModelFamilyOpenAI, "":
		e, err = openai.NewClient(openai.Config{
			APIKey:         cfg.OpenAI.APIKey,
			BaseURL:        cfg.OpenAI.BaseURL,
			Model:          cfg.OpenAI.Model,
			Dimensionality: cfg.Dimensionality,
		})
	case ai.ModelFamilyGemini:
		e, err = gemini.NewClient(ctx, gemini.Config{
			APIKey:         cfg.Gemini.APIKey,
			Model:          cfg.Gemini.Model,
			Dimensionality: cfg.Dimensionality,
		})
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return ai.NewBatchedEmbedder(e, ai.BatchOptions{
		MaxItems:    cfg.BatchSize,
		MaxTokens:   cfg.MaxBatchTokens,
		Concurrency: cfg.Concurrency,
	}), nil
}
