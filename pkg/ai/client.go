// Package ai contains the embedding clients that turn page text into vectors.
package ai

import (
	"context"
)

// Model families.
const (
	ModelFamilyOpenAI = "openai"
	ModelFamilyGemini = "gemini"
)

// Embedder converts texts into fixed-dimension vectors.
type Embedder interface {
	// Name returns the model family of the client.
	Name() string
	// Dimensionality is the length of every returned vector.
	Dimensionality() int
	// EmbedTexts returns one vector per input text, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
