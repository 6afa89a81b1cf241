// Package openai implements ai.Embedder on the OpenAI embeddings API.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/talkifydocs/ingest-backend/pkg/ai"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// DefaultEmbeddingModel is used when no model is configured. It produces
// 1536-dimensional vectors.
const DefaultEmbeddingModel = "text-embedding-3-small"

// Config is the OpenAI client configuration.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint.
	BaseURL        string
	Model          string
	Dimensionality int
}

// Client implements the ai.Embedder interface for OpenAI
type Client struct {
	client         *openai.Client
	embeddingModel string
	dimensionality int
}

// NewClient creates a new OpenAI embedding client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		err := fmt.Errorf("%w: missing OpenAI API key", errdomain.ErrInvalidArgument)
		return nil, errorsx.AddMessage(err, "AI client configuration is missing. Please contact your administrator.")
	}
	if cfg.Dimensionality <= 0 {
		return nil, fmt.Errorf("%w: dimensionality must be positive", errdomain.ErrInvalidArgument)
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	model := cfg.Model
	if model == "" {
		model = DefaultEmbeddingModel
	}

	return &Client{
		client:         &client,
		embeddingModel: model,
		dimensionality: cfg.Dimensionality,
	}, nil
}

// Name returns the client name
func (c *Client) Name() string {
	return ai.ModelFamilyOpenAI
}

// Dimensionality returns the configured vector length.
func (c *Client) Dimensionality() int {
	return c.dimensionality
}

// EmbedTexts sends all the texts in a single request. Callers that need to
// bound the request size wrap the client with ai.NewBatchedEmbedder.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: c.embeddingModel,
	}
	// Only the text-embedding-3 family accepts a custom output size.
	if strings.HasPrefix(c.embeddingModel, "text-embedding-3") {
		params.Dimensions = openai.Int(int64(c.dimensionality))
	}

	resp, err := c.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("%w: openai request: %w", errdomain.ErrEmbedding, err),
			"Unable to connect to AI service. Please check your connection and try again.",
		)
	}

	vectors, err := vectorsByIndex(resp.Data, len(texts))
	if err != nil {
		return nil, errorsx.AddMessage(err, "AI service returned invalid embeddings. Please try again.")
	}

	if err := ai.ValidateEmbeddings(vectors, len(texts), c.dimensionality); err != nil {
		return nil, errorsx.AddMessage(err, "AI service returned invalid embeddings. Please try again.")
	}
	return vectors, nil
}

// vectorsByIndex places every embedding at the position of its input. Each
// index in [0, inputs) must appear exactly once.
func vectorsByIndex(data []openai.Embedding, inputs int) ([][]float32, error) {
	if len(data) != inputs {
		return nil, fmt.Errorf("%w: got %d vectors for %d inputs", errdomain.ErrEmbedding, len(data), inputs)
	}

	vectors := make([][]float32, inputs)
	for _, d := range data {
		if d.Index < 0 || d.Index >= int64(inputs) {
			return nil, fmt.Errorf("%w: vector index %d out of range", errdomain.ErrEmbedding, d.Index)
		}
		if vectors[d.Index] != nil {
			return nil, fmt.Errorf("%w: duplicate vector index %d", errdomain.ErrEmbedding, d.Index)
		}

		v := make([]float32, len(d.Embedding))
		for j, f := range d.Embedding {
			v[j] = float32(f)
		}
		vectors[d.Index] = v
	}
	return vectors, nil
}
