package client

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/config"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func TestNewEmbedder(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("ok - openai", func(c *qt.C) {
		e, err := NewEmbedder(ctx, config.EmbeddingConfig{
			Provider:       "openai",
			Dimensionality: 1536,
			BatchSize:      96,
			OpenAI:         config.OpenAIConfig{APIKey: "sk-test"},
		})
		c.Assert(err, qt.IsNil)
		c.Check(e.Dimensionality(), qt.Equals, 1536)
	})

	c.Run("nok - missing key", func(c *qt.C) {
		_, err := NewEmbedder(ctx, config.EmbeddingConfig{Provider: "openai", Dimensionality: 1536})
		c.Check(errors.Is(err, errdomain.ErrInvalidArgument), qt.IsTrue)
	})

	c.Run("nok - unsupported dimensionality", func(c *qt.C) {
		_, err := NewEmbedder(ctx, config.EmbeddingConfig{
			Provider:       "gemini",
			Dimensionality: 1000,
			Gemini:         config.GeminiConfig{APIKey: "key"},
		})
		c.Check(err, qt.IsNotNil)
	})

	c.Run("nok - unknown provider", func(c *qt.C) {
		_, err := NewEmbedder(ctx, config.EmbeddingConfig{Provider: "cohere", Dimensionality: 1024})
		c.Check(err, qt.ErrorMatches, `unsupported embedding provider "cohere"`)
	})
}

func TestNewFetcher(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("http only", func(c *qt.C) {
		f, closeFn, err := NewFetcher(ctx, config.AppConfig{})
		c.Assert(err, qt.IsNil)
		c.Cleanup(func() { _ = closeFn() })

		_, err = f.Fetch(ctx, "s3://bucket/report.pdf")
		c.Check(errors.Is(err, errdomain.ErrFetch), qt.IsTrue)
		c.Check(err, qt.ErrorMatches, `.*unsupported location scheme "s3"`)
	})

	c.Run("with MinIO", func(c *qt.C) {
		f, closeFn, err := NewFetcher(ctx, config.AppConfig{
			Minio: config.MinioConfig{Host: "localhost", Port: "9000"},
		})
		c.Assert(err, qt.IsNil)
		c.Cleanup(func() { _ = closeFn() })

		_, err = f.Fetch(ctx, "gs://bucket/report.pdf")
		c.Check(err, qt.ErrorMatches, `.*unsupported location scheme "gs"`)
	})
}

func TestNewVectorIndex(t *testing.T) {
	c := qt.New(t)

	_, _, err := NewVectorIndex(context.Background(), config.VectorIndexConfig{Provider: "pinecone"}, 1536)
	c.Check(err, qt.ErrorMatches, `unsupported vector index provider "pinecone"`)
}
