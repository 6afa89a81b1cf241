package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3"

	qt "github.com/frankban/quicktest"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

type embeddingRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Dimensions int      `json:"dimensions"`
}

type embeddingData struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// newFakeAPI serves /embeddings, returning the data in reverse order so the
// client has to place it by index. reply overrides the vector of each input.
func newFakeAPI(c *qt.C, reply func(i int) []float64, got *embeddingRequest) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, qt.Equals, "/embeddings")
		c.Check(r.Header.Get("Authorization"), qt.Equals, "Bearer test-key")

		var req embeddingRequest
		c.Assert(json.NewDecoder(r.Body).Decode(&req), qt.IsNil)
		if got != nil {
			*got = req
		}

		data := make([]embeddingData, 0, len(req.Input))
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, embeddingData{Object: "embedding", Index: i, Embedding: reply(i)})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   data,
			"model":  req.Model,
			"usage":  map[string]int{"prompt_tokens": 1, "total_tokens": 1},
		})
	}))
	c.Cleanup(srv.Close)
	return srv
}

func TestClient_EmbedTexts(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("vectors follow input order", func(c *qt.C) {
		var req embeddingRequest
		srv := newFakeAPI(c, func(i int) []float64 { return []float64{float64(i), 0.5, 0.25} }, &req)

		client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Dimensionality: 3})
		c.Assert(err, qt.IsNil)

		got, err := client.EmbedTexts(ctx, []string{"first", "second", "third"})
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.DeepEquals, [][]float32{{0, 0.5, 0.25}, {1, 0.5, 0.25}, {2, 0.5, 0.25}})
		c.Check(req.Model, qt.Equals, DefaultEmbeddingModel)
		c.Check(req.Dimensions, qt.Equals, 3)
		c.Check(req.Input, qt.DeepEquals, []string{"first", "second", "third"})
	})

	c.Run("wrong dimensionality", func(c *qt.C) {
		srv := newFakeAPI(c, func(int) []float64 { return []float64{1, 2} }, nil)

		client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Dimensionality: 3})
		c.Assert(err, qt.IsNil)

		_, err = client.EmbedTexts(ctx, []string{"only"})
		c.Check(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
		c.Check(errorsx.Message(err), qt.Equals, "AI service returned invalid embeddings. Please try again.")
	})

	c.Run("request rejected", func(c *qt.C) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"bad input","type":"invalid_request_error"}}`))
		}))
		c.Cleanup(srv.Close)

		client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Dimensionality: 3})
		c.Assert(err, qt.IsNil)

		_, err = client.EmbedTexts(ctx, []string{"x"})
		c.Check(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
	})

	c.Run("no texts", func(c *qt.C) {
		client, err := NewClient(Config{APIKey: "test-key", BaseURL: "http://127.0.0.1:1", Dimensionality: 3})
		c.Assert(err, qt.IsNil)

		got, err := client.EmbedTexts(ctx, nil)
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.HasLen, 0)
	})
}

func TestVectorsByIndex(t *testing.T) {
	c := qt.New(t)

	emb := func(index int64, v float64) openai.Embedding {
		return openai.Embedding{Index: index, Embedding: []float64{v}}
	}

	got, err := vectorsByIndex([]openai.Embedding{emb(1, 10), emb(0, 20)}, 2)
	c.Assert(err, qt.IsNil)
	c.Check(got, qt.DeepEquals, [][]float32{{20}, {10}})

	testcases := []struct {
		name    string
		data    []openai.Embedding
		wantErr string
	}{
		{
			name:    "duplicate index",
			data:    []openai.Embedding{emb(0, 1), emb(0, 2)},
			wantErr: ".*duplicate vector index 0",
		},
		{
			name:    "index out of range",
			data:    []openai.Embedding{emb(0, 1), emb(2, 2)},
			wantErr: ".*vector index 2 out of range",
		},
		{
			name:    "negative index",
			data:    []openai.Embedding{emb(-1, 1), emb(1, 2)},
			wantErr: ".*vector index -1 out of range",
		},
		{
			name:    "missing vector",
			data:    []openai.Embedding{emb(0, 1)},
			wantErr: ".*got 1 vectors for 2 inputs",
		},
	}

	for _, tc := range testcases {
		c.Run(tc.name, func(c *qt.C) {
			_, err := vectorsByIndex(tc.data, 2)
			c.Check(errors.Is(err, errdomain.ErrEmbedding), qt.IsTrue)
			c.Check(err, qt.ErrorMatches, tc.wantErr)
		})
	}
}

func TestNewClient(t *testing.T) {
	c := qt.New(t)

	_, err := NewClient(Config{Dimensionality: 3})
	c.Check(errors.Is(err, errdomain.ErrInvalidArgument), qt.IsTrue)
	c.Check(errorsx.Message(err), qt.Contains, "AI client configuration is missing")

	_, err = NewClient(Config{APIKey: "k"})
	c.Check(errors.Is(err, errdomain.ErrInvalidArgument), qt.IsTrue)

	client, err := NewClient(Config{APIKey: "k", Model: "text-embedding-ada-002", Dimensionality: 1536})
	c.Assert(err, qt.IsNil)
	c.Check(client.Name(), qt.Equals, "openai")
	c.Check(client.Dimensionality(), qt.Equals, 1536)
	c.Check(client.embeddingModel, qt.Equals, "text-embedding-ada-002")
}
