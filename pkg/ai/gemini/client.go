// Package gemini implements ai.Embedder on the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/talkifydocs/ingest-backend/pkg/ai"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

const (
	// DefaultEmbeddingModel is used when no model is configured.
	DefaultEmbeddingModel = "gemini-embedding-001"

	// TaskTypeRetrievalDocument optimises the vectors for stored documents.
	TaskTypeRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

var supportedDimensions = map[int]bool{768: true, 1536: true, 3072: true}

// Config is the Gemini client configuration.
type Config struct {
	APIKey         string
	Model          string
	Dimensionality int
}

// Client implements the ai.Embedder interface for Gemini
type Client struct {
	client         *genai.Client
	embeddingModel string
	dimensionality int
}

// NewClient creates a new Gemini embedding client
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		err := fmt.Errorf("%w: missing Gemini API key", errdomain.ErrInvalidArgument)
		return nil, errorsx.AddMessage(err, "AI client configuration is missing. Please contact your administrator.")
	}
	if !supportedDimensions[cfg.Dimensionality] {
		return nil, errorsx.AddMessage(
			fmt.Errorf("%w: gemini embeddings support 768, 1536 or 3072 dimensions, got %d",
				errdomain.ErrInvalidArgument, cfg.Dimensionality),
			"Gemini embeddings only support 768, 1536, or 3072 dimensions.",
		)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("failed to create Gemini client: %w", err),
			"Unable to connect to AI service. Please try again later.",
		)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultEmbeddingModel
	}

	return &Client{
		client:         client,
		embeddingModel: model,
		dimensionality: cfg.Dimensionality,
	}, nil
}

// Name returns the client name
func (c *Client) Name() string {
	return ai.ModelFamilyGemini
}

// Dimensionality returns the configured vector length.
func (c *Client) Dimensionality() int {
	return c.dimensionality
}

// EmbedTexts embeds the texts in one EmbedContent call, one content per text.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, contents, &genai.EmbedContentConfig{
		TaskType:             TaskTypeRetrievalDocument,
		OutputDimensionality: genai.Ptr(int32(c.dimensionality)),
	})
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("%w: gemini request: %w", errdomain.ErrEmbedding, err),
			"Unable to connect to AI service. Please check your connection and try again.",
		)
	}

	vectors := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if emb != nil {
			vectors[i] = emb.Values
		}
	}

	if err := ai.ValidateEmbeddings(vectors, len(texts), c.dimensionality); err != nil {
		return nil, errorsx.AddMessage(err, "AI service returned invalid embeddings. Please try again.")
	}
	return vectors, nil
}
