package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	qt "github.com/frankban/quicktest"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// fakeEmbedder encodes each text's ordinal suffix in the first vector
// component and records the size of every request.
type fakeEmbedder struct {
	dim int
	err error
	// short drops the last vector of every response.
	short bool

	mu    sync.Mutex
	calls []int
}

func (f *fakeEmbedder) Name() string        { return "fake" }
func (f *fakeEmbedder) Dimensionality() int { return f.dim }

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls = append(f.calls, len(texts))
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		var n int
		_, _ = fmt.Sscanf(text, "text-%d", &n)
		v := make([]float32, f.dim)
		v[0] = float32(n)
		vectors = append(vectors, v)
	}
	if f.short {
		vectors = vectors[:len(vectors)-1]
	}
	return vectors, nil
}

func texts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("text-%d", i)
	}
	return out
}

func TestEmbedInBatches(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("preserves input order across concurrent batches", func(c *qt.C) {
		e := &fakeEmbedder{dim: 4}
		got, err := EmbedInBatches(ctx, e, texts(25), BatchOptions{MaxItems: 3, Concurrency: 4})
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.HasLen, 25)
		for i, v := range got {
			c.Check(v[0], qt.Equals, float32(i))
			c.Check(v, qt.HasLen, 4)
		}
		c.Check(e.calls, qt.HasLen, 9)
	})

	c.Run("no texts", func(c *qt.C) {
		e := &fakeEmbedder{dim: 4}
		got, err := EmbedInBatches(ctx, e, nil, BatchOptions{})
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.HasLen, 0)
		c.Check(e.calls, qt.HasLen, 0)
	})

	c.Run("single request without limits", func(c *qt.C) {
		e := &fakeEmbedder{dim: 2}
		_, err := EmbedInBatches(ctx, e, texts(10), BatchOptions{})
		c.Assert(err, qt.IsNil)
		c.Check(e.calls, qt.DeepEquals, []int{10})
	})

	c.Run("provider error", func(c *qt.C) {
		e := &fakeEmbedder{dim: 2, err: fmt.Errorf("%w: quota", errdomain.ErrEmbedding)}
		_, err := EmbedInBatches(ctx, e, texts(5), BatchOptions{MaxItems: 2})
		c.Assert(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
		c.Check(errorsx.Message(err), qt.Equals, "Unable to generate embeddings. Please try again.")
	})

	c.Run("count mismatch", func(c *qt.C) {
		e := &fakeEmbedder{dim: 2, short: true}
		_, err := EmbedInBatches(ctx, e, texts(3), BatchOptions{})
		c.Assert(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
		c.Check(err, qt.ErrorMatches, ".*got 2 vectors for 3 inputs.*")
	})

	c.Run("batched embedder", func(c *qt.C) {
		e := &fakeEmbedder{dim: 3}
		b := NewBatchedEmbedder(e, BatchOptions{MaxItems: 4})
		got, err := b.EmbedTexts(ctx, texts(9))
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.HasLen, 9)
		c.Check(b.Dimensionality(), qt.Equals, 3)
		c.Check(e.calls, qt.HasLen, 3)
	})
}

func TestSplitBatches(t *testing.T) {
	c := qt.New(t)

	// One token per character.
	count := func(s string) int { return len(s) }

	testcases := []struct {
		name  string
		texts []string
		opts  BatchOptions
		want  []batch
	}{
		{
			name:  "by count",
			texts: []string{"a", "b", "c", "d", "e"},
			opts:  BatchOptions{MaxItems: 2},
			want:  []batch{{0, 2}, {2, 4}, {4, 5}},
		},
		{
			name:  "by token budget",
			texts: []string{"aaa", "bb", "cccc", "d"},
			opts:  BatchOptions{MaxTokens: 5},
			want:  []batch{{0, 2}, {2, 4}},
		},
		{
			name:  "oversized text goes alone",
			texts: []string{"a", strings.Repeat("x", 10), "b"},
			opts:  BatchOptions{MaxTokens: 5},
			want:  []batch{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:  "both limits",
			texts: []string{"a", "b", "c", "dddd"},
			opts:  BatchOptions{MaxItems: 2, MaxTokens: 4},
			want:  []batch{{0, 2}, {2, 3}, {3, 4}},
		},
		{
			name:  "empty",
			texts: nil,
			opts:  BatchOptions{MaxItems: 2},
			want:  nil,
		},
	}

	for _, tc := range testcases {
		c.Run(tc.name, func(c *qt.C) {
			c.Check(splitBatches(tc.texts, tc.opts, count), qt.CmpEquals(cmp.AllowUnexported(batch{})), tc.want)
		})
	}
}

func TestValidateEmbeddings(t *testing.T) {
	c := qt.New(t)

	c.Check(ValidateEmbeddings([][]float32{{1, 2}, {3, 4}}, 2, 2), qt.IsNil)

	err := ValidateEmbeddings([][]float32{{1, 2}, {3}}, 2, 2)
	c.Check(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
	c.Check(err, qt.ErrorMatches, ".*vector 1 has 1 dimensions, expected 2")

	err = ValidateEmbeddings(nil, 1, 2)
	c.Check(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
}

func TestEstimateTokenCount(t *testing.T) {
	c := qt.New(t)

	c.Check(EstimateTokenCount("hello world") > 0, qt.IsTrue)
	c.Check(EstimateTokenCount(strings.Repeat("word ", 200)) > EstimateTokenCount("word"), qt.IsTrue)
}
