package ai

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// BatchOptions bound the sub-batches sent to an embedding provider.
type BatchOptions struct {
	// MaxItems is the largest number of texts in a request. Zero means no
	// limit.
	MaxItems int
	// MaxTokens is the largest estimated token count of a request. A single
	// text above the budget is sent on its own. Zero means no limit.
	MaxTokens int
	// Concurrency is the number of requests in flight. Values below 1 mean
	// sequential requests.
	Concurrency int
}

type batch struct {
	start, end int
}

// splitBatches cuts texts into contiguous ranges that honour opts. countTokens
// estimates the size of a text.
func splitBatches(texts []string, opts BatchOptions, countTokens func(string) int) []batch {
	var batches []batch
	start, tokens := 0, 0
	for i, text := range texts {
		n := 0
		if opts.MaxTokens > 0 {
			n = countTokens(text)
		}

		full := opts.MaxItems > 0 && i-start >= opts.MaxItems
		overBudget := opts.MaxTokens > 0 && i > start && tokens+n > opts.MaxTokens
		if full || overBudget {
			batches = append(batches, batch{start: start, end: i})
			start, tokens = i, 0
		}
		tokens += n
	}
	if start < len(texts) {
		batches = append(batches, batch{start: start, end: len(texts)})
	}
	return batches
}

// ValidateEmbeddings checks that a provider response holds one vector of the
// expected dimensionality per input.
func ValidateEmbeddings(vectors [][]float32, inputs, dimensionality int) error {
	if len(vectors) != inputs {
		return fmt.Errorf("%w: got %d vectors for %d inputs", errdomain.ErrEmbedding, len(vectors), inputs)
	}
	for i, v := range vectors {
		if len(v) != dimensionality {
			return fmt.Errorf("%w: vector %d has %d dimensions, expected %d",
				errdomain.ErrEmbedding, i, len(v), dimensionality)
		}
	}
	return nil
}

// EmbedInBatches embeds texts with e, splitting them into sub-batches bounded
// by opts. Sub-batches run concurrently and the vectors are returned in input
// order. Every sub-batch response is validated.
func EmbedInBatches(ctx context.Context, e Embedder, texts []string, opts BatchOptions) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors := make([][]float32, len(texts))
	batches := splitBatches(texts, opts, EstimateTokenCount)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(opts.Concurrency, 1))
	for _, b := range batches {
		eg.Go(func() error {
			got, err := e.EmbedTexts(ctx, texts[b.start:b.end])
			if err != nil {
				return fmt.Errorf("embedding texts %d-%d: %w", b.start, b.end, err)
			}
			if err := ValidateEmbeddings(got, b.end-b.start, e.Dimensionality()); err != nil {
				return fmt.Errorf("embedding texts %d-%d: %w", b.start, b.end, err)
			}

			// Batches don't overlap.
			copy(vectors[b.start:b.end], got)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errorsx.AddMessage(err, "Unable to generate embeddings. Please try again.")
	}
	return vectors, nil
}

// BatchedEmbedder is an Embedder that splits every call into sub-batches.
type BatchedEmbedder struct {
	Embedder
	opts BatchOptions
}

// NewBatchedEmbedder wraps e so that EmbedTexts honours opts.
func NewBatchedEmbedder(e Embedder, opts BatchOptions) *BatchedEmbedder {
	return &BatchedEmbedder{Embedder: e, opts: opts}
}

// EmbedTexts implements Embedder.
func (b *BatchedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return EmbedInBatches(ctx, b.Embedder, texts, b.opts)
}
