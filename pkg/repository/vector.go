package repository

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/gofrs/uuid"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// VectorItem is a page's text paired with its embedding and the metadata that
// ties it back to its source file.
type VectorItem struct {
	ID            types.VectorItemIDType
	Vector        []float32
	Text          string
	OwnerUID      types.OwnerUIDType
	SourceFileUID types.FileUIDType
	PageIndex     int
}

// VectorItemID returns the deterministic ID of a page in the vector index, so
// re-indexing a page overwrites the previous item.
func VectorItemID(fileUID types.FileUIDType, pageIndex int) types.VectorItemIDType {
	return uuid.NewV5(fileUID, "page-"+strconv.Itoa(pageIndex))
}

// VectorIndex writes embeddings into a namespace of a vector index.
type VectorIndex interface {
	// UpsertVectors inserts or replaces the items in the namespace. A
	// partially applied batch is reported as a failure.
	UpsertVectors(ctx context.Context, namespace string, items []VectorItem) error
}

func (r *repository) UpsertVectors(ctx context.Context, namespace string, items []VectorItem) error {
	return r.vectorIndex.UpsertVectors(ctx, namespace, items)
}

func validateVectorItems(namespace string, items []VectorItem, dimensionality int) error {
	if namespace == "" {
		return fmt.Errorf("%w: empty namespace", errdomain.ErrInvalidArgument)
	}
	for i, item := range items {
		if item.ID.IsNil() {
			return fmt.Errorf("%w: item %d has no ID", errdomain.ErrInvalidArgument, i)
		}
		if len(item.Vector) != dimensionality {
			return fmt.Errorf("%w: item %d has %d dimensions, expected %d",
				errdomain.ErrInvalidArgument, i, len(item.Vector), dimensionality)
		}
	}
	return nil
}

// Milvus collection fields.
const (
	milvusFieldID            = "id"
	milvusFieldNamespace     = "namespace"
	milvusFieldOwnerUID      = "owner_uid"
	milvusFieldSourceFileUID = "source_file_uid"
	milvusFieldPageIndex     = "page_index"
	milvusFieldText          = "text"
	milvusFieldEmbedding     = "embedding"

	// milvusMaxVarCharLength is the largest VarChar Milvus accepts.
	milvusMaxVarCharLength = 65535

	hnswM              = 16
	hnswEfConstruction = 200
)

type milvusIndex struct {
	c              *milvusclient.Client
	collection     string
	dimensionality int
}

// NewMilvusIndex returns a VectorIndex backed by a single Milvus collection in
// which the namespace is the partition key. The collection is created if it
// doesn't exist.
func NewMilvusIndex(ctx context.Context, host, port, collection string, dimensionality int) (VectorIndex, func() error, error) {
	c, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address: host + ":" + port,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to milvus: %w", err)
	}

	m := &milvusIndex{
		c:              c,
		collection:     collection,
		dimensionality: dimensionality,
	}
	if err := m.createCollection(ctx); err != nil {
		_ = c.Close(ctx)
		return nil, nil, err
	}

	closeFn := func() error { return c.Close(context.Background()) }
	return m, closeFn, nil
}

func milvusSchema(collection string, dimensionality int) *entity.Schema {
	return entity.NewSchema().
		WithName(collection).
		WithDescription("Page embeddings of ingested documents").
		WithField(entity.NewField().WithName(milvusFieldID).WithDataType(entity.FieldTypeVarChar).WithIsPrimaryKey(true).WithMaxLength(36)).
		WithField(entity.NewField().WithName(milvusFieldNamespace).WithDataType(entity.FieldTypeVarChar).WithIsPartitionKey(true).WithMaxLength(64)).
		WithField(entity.NewField().WithName(milvusFieldOwnerUID).WithDataType(entity.FieldTypeVarChar).WithMaxLength(255)).
		WithField(entity.NewField().WithName(milvusFieldSourceFileUID).WithDataType(entity.FieldTypeVarChar).WithMaxLength(36)).
		WithField(entity.NewField().WithName(milvusFieldPageIndex).WithDataType(entity.FieldTypeInt64)).
		WithField(entity.NewField().WithName(milvusFieldText).WithDataType(entity.FieldTypeVarChar).WithMaxLength(milvusMaxVarCharLength)).
		WithField(entity.NewField().WithName(milvusFieldEmbedding).WithDataType(entity.FieldTypeFloatVector).WithDim(int64(dimensionality)))
}

func (m *milvusIndex) createCollection(ctx context.Context) error {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("collection_name", m.collection), zap.Int("dimensionality", m.dimensionality))

	has, err := m.c.HasCollection(ctx, milvusclient.NewHasCollectionOption(m.collection))
	if err != nil {
		return fmt.Errorf("checking collection existence: %w", err)
	}
	if has {
		log.Info("Skipping collection creation: already exists.")
		return nil
	}

	vectorIdx := milvusclient.NewCreateIndexOption(m.collection, milvusFieldEmbedding,
		index.NewHNSWIndex(entity.COSINE, hnswM, hnswEfConstruction))
	sourceIdx := milvusclient.NewCreateIndexOption(m.collection, milvusFieldSourceFileUID,
		index.NewInvertedIndex())

	err = m.c.CreateCollection(ctx,
		milvusclient.NewCreateCollectionOption(m.collection, milvusSchema(m.collection, m.dimensionality)).
			WithIndexOptions(vectorIdx, sourceIdx))
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	log.Info("Collection created successfully.")
	return nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func milvusColumns(namespace string, items []VectorItem, dimensionality int) []column.Column {
	n := len(items)
	ids := make([]string, n)
	namespaces := make([]string, n)
	owners := make([]string, n)
	sources := make([]string, n)
	pages := make([]int64, n)
	texts := make([]string, n)
	vectors := make([][]float32, n)

	for i, item := range items {
		ids[i] = item.ID.String()
		namespaces[i] = namespace
		owners[i] = item.OwnerUID
		sources[i] = item.SourceFileUID.String()
		pages[i] = int64(item.PageIndex)
		texts[i] = truncateUTF8(item.Text, milvusMaxVarCharLength)
		vectors[i] = item.Vector
	}

	return []column.Column{
		column.NewColumnVarChar(milvusFieldID, ids),
		column.NewColumnVarChar(milvusFieldNamespace, namespaces),
		column.NewColumnVarChar(milvusFieldOwnerUID, owners),
		column.NewColumnVarChar(milvusFieldSourceFileUID, sources),
		column.NewColumnInt64(milvusFieldPageIndex, pages),
		column.NewColumnVarChar(milvusFieldText, texts),
		column.NewColumnFloatVector(milvusFieldEmbedding, dimensionality, vectors),
	}
}

func (m *milvusIndex) UpsertVectors(ctx context.Context, namespace string, items []VectorItem) error {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("collection_name", m.collection), zap.String("namespace", namespace))

	if err := validateVectorItems(namespace, items, m.dimensionality); err != nil {
		return fmt.Errorf("%w: %w", errdomain.ErrIndexWrite, err)
	}
	if len(items) == 0 {
		return nil
	}

	result, err := m.c.Upsert(ctx, milvusclient.NewColumnBasedInsertOption(m.collection,
		milvusColumns(namespace, items, m.dimensionality)...))
	if err != nil {
		return fmt.Errorf("%w: upserting vectors: %w", errdomain.ErrIndexWrite, err)
	}
	if result.UpsertCount != int64(len(items)) {
		return fmt.Errorf("%w: partial upsert, %d of %d items written",
			errdomain.ErrIndexWrite, result.UpsertCount, len(items))
	}

	task, err := m.c.Flush(ctx, milvusclient.NewFlushOption(m.collection))
	if err != nil {
		return fmt.Errorf("%w: flushing collection: %w", errdomain.ErrIndexWrite, err)
	}
	if err := task.Await(ctx); err != nil {
		return fmt.Errorf("%w: waiting for flush: %w", errdomain.ErrIndexWrite, err)
	}

	log.Info("Successfully upserted vectors", zap.Int("count", len(items)))
	return nil
}
