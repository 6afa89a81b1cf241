package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate/entities/models"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// Weaviate class properties.
const (
	weaviatePropText          = "text"
	weaviatePropOwnerUID      = "ownerUid"
	weaviatePropSourceFileUID = "sourceFileUid"
	weaviatePropPageIndex     = "pageIndex"

	weaviateBatchSize = 200
)

type weaviateIndex struct {
	client         *weaviate.Client
	class          string
	dimensionality int
}

// WeaviateConfig holds the connection settings of a Weaviate index.
type WeaviateConfig struct {
	Host   string
	Scheme string
	APIKey string
	Class  string
}

// NewWeaviateIndex returns a VectorIndex backed by a multi-tenant Weaviate
// class in which every namespace is a tenant. The class is created if it
// doesn't exist and tenants are created on first write.
func NewWeaviateIndex(ctx context.Context, cfg WeaviateConfig, dimensionality int) (VectorIndex, error) {
	clientCfg := weaviate.Config{
		Host:   cfg.Host,
		Scheme: cfg.Scheme,
	}
	if cfg.APIKey != "" {
		clientCfg.AuthConfig = auth.ApiKey{Value: cfg.APIKey}
	}

	client, err := weaviate.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating weaviate client: %w", err)
	}

	w := &weaviateIndex{
		client:         client,
		class:          cfg.Class,
		dimensionality: dimensionality,
	}
	if err := w.createClass(ctx); err != nil {
		return nil, err
	}

	return w, nil
}

func weaviateClass(name string) *models.Class {
	return &models.Class{
		Class:       name,
		Description: "Page embeddings of ingested documents",
		Vectorizer:  "none",
		Properties: []*models.Property{
			{Name: weaviatePropText, DataType: []string{"text"}},
			{Name: weaviatePropOwnerUID, DataType: []string{"text"}},
			{Name: weaviatePropSourceFileUID, DataType: []string{"text"}},
			{Name: weaviatePropPageIndex, DataType: []string{"int"}},
		},
		VectorIndexType: "hnsw",
		VectorIndexConfig: map[string]any{
			"distance": "cosine",
		},
		MultiTenancyConfig: &models.MultiTenancyConfig{
			Enabled:            true,
			AutoTenantCreation: true,
		},
	}
}

func (w *weaviateIndex) createClass(ctx context.Context) error {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("class", w.class))

	schema, err := w.client.Schema().Getter().Do(ctx)
	if err != nil {
		return fmt.Errorf("getting schema: %w", err)
	}
	for _, class := range schema.Classes {
		if class.Class == w.class {
			log.Info("Skipping class creation: already exists.")
			return nil
		}
	}

	if err := w.client.Schema().ClassCreator().WithClass(weaviateClass(w.class)).Do(ctx); err != nil {
		return fmt.Errorf("creating class: %w", err)
	}

	log.Info("Class created successfully.")
	return nil
}

func weaviateObjects(class, tenant string, items []VectorItem) []*models.Object {
	objects := make([]*models.Object, len(items))
	for i, item := range items {
		objects[i] = &models.Object{
			Class:  class,
			ID:     strfmt.UUID(item.ID.String()),
			Tenant: tenant,
			Vector: item.Vector,
			Properties: map[string]any{
				weaviatePropText:          item.Text,
				weaviatePropOwnerUID:      item.OwnerUID,
				weaviatePropSourceFileUID: item.SourceFileUID.String(),
				weaviatePropPageIndex:     item.PageIndex,
			},
		}
	}
	return objects
}

// batchErrors collects the per-object failures of a batch response.
func batchErrors(resp []models.ObjectsGetResponse) []string {
	var msgs []string
	for _, r := range resp {
		if r.Result == nil || r.Result.Errors == nil {
			continue
		}
		for _, e := range r.Result.Errors.Error {
			msgs = append(msgs, fmt.Sprintf("%s: %s", r.ID, e.Message))
		}
	}
	return msgs
}

func (w *weaviateIndex) UpsertVectors(ctx context.Context, namespace string, items []VectorItem) error {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("class", w.class), zap.String("tenant", namespace))

	if err := validateVectorItems(namespace, items, w.dimensionality); err != nil {
		return fmt.Errorf("%w: %w", errdomain.ErrIndexWrite, err)
	}

	objects := weaviateObjects(w.class, namespace, items)
	for start := 0; start < len(objects); start += weaviateBatchSize {
		end := min(start+weaviateBatchSize, len(objects))

		resp, err := w.client.Batch().ObjectsBatcher().WithObjects(objects[start:end]...).Do(ctx)
		if err != nil {
			return fmt.Errorf("%w: inserting batch %d-%d: %w", errdomain.ErrIndexWrite, start, end, err)
		}
		if msgs := batchErrors(resp); len(msgs) > 0 {
			return fmt.Errorf("%w: partial batch %d-%d: %s",
				errdomain.ErrIndexWrite, start, end, strings.Join(msgs, "; "))
		}
	}

	log.Info("Successfully upserted vectors", zap.Int("count", len(items)))
	return nil
}
