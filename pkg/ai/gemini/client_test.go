package gemini

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func TestNewClient(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("empty API key returns error", func(c *qt.C) {
		client, err := NewClient(ctx, Config{Dimensionality: 768})
		c.Assert(errors.Is(err, errdomain.ErrInvalidArgument), qt.IsTrue)
		c.Check(errorsx.Message(err), qt.Contains, "AI client configuration is missing")
		c.Check(client, qt.IsNil)
	})

	c.Run("unsupported dimensionality", func(c *qt.C) {
		client, err := NewClient(ctx, Config{APIKey: "k", Dimensionality: 1000})
		c.Assert(errors.Is(err, errdomain.ErrInvalidArgument), qt.IsTrue)
		c.Check(errorsx.Message(err), qt.Contains, "768, 1536, or 3072")
		c.Check(client, qt.IsNil)
	})

	c.Run("defaults", func(c *qt.C) {
		client, err := NewClient(ctx, Config{APIKey: "k", Dimensionality: 1536})
		c.Assert(err, qt.IsNil)
		c.Check(client.Name(), qt.Equals, "gemini")
		c.Check(client.Dimensionality(), qt.Equals, 1536)
		c.Check(client.embeddingModel, qt.Equals, DefaultEmbeddingModel)
	})
}

func TestClient_EmbedTextsEmpty(t *testing.T) {
	c := qt.New(t)

	client := &Client{dimensionality: 768}
	got, err := client.EmbedTexts(context.Background(), nil)
	c.Assert(err, qt.IsNil)
	c.Check(got, qt.HasLen, 0)
}
