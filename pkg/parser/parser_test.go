package parser

import (
	"bytes"
	"context"
	"testing"

	"github.com/gofrs/uuid"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/parser/parsertest"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func TestPDFParser_Parse(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	fileUID := uuid.Must(uuid.NewV4())
	p := NewPDFParser()

	c.Run("ok - one page per source page, in order", func(c *qt.C) {
		doc := parsertest.BuildPDF("Page one text", "Page two text", "Page three text")

		pages, err := p.Parse(ctx, fileUID, doc)
		c.Assert(err, qt.IsNil)
		c.Assert(pages, qt.HasLen, 3)

		for i, page := range pages {
			c.Check(page.PageIndex, qt.Equals, i)
			c.Check(page.SourceFileUID, qt.Equals, fileUID)
		}
		c.Check(pages[0].Text, qt.Equals, "Page one text")
		c.Check(pages[2].Text, qt.Equals, "Page three text")
	})

	c.Run("ok - blank page is kept", func(c *qt.C) {
		doc := parsertest.BuildPDF("First", "", "Third")

		pages, err := p.Parse(ctx, fileUID, doc)
		c.Assert(err, qt.IsNil)
		c.Assert(pages, qt.HasLen, 3)
		c.Check(pages[1].IsBlank(), qt.IsTrue)
		c.Check(pages[2].Text, qt.Equals, "Third")
	})

	c.Run("ok - undecodable page yields a blank page", func(c *qt.C) {
		doc := parsertest.BuildPDF("Page one text", "Page two text", "Page three text")
		doc = bytes.Replace(doc, []byte("/Contents 6 0 R"), []byte("/Contents 99 0 R"), 1)

		pages, err := p.Parse(ctx, fileUID, doc)
		c.Assert(err, qt.IsNil)
		c.Assert(pages, qt.HasLen, 3)
		c.Check(pages[0].Text, qt.Equals, "Page one text")
		c.Check(pages[1].IsBlank(), qt.IsTrue)
		c.Check(pages[2].Text, qt.Equals, "Page three text")
	})

	c.Run("ok - deterministic", func(c *qt.C) {
		doc := parsertest.BuildPDF("alpha", "beta")

		first, err := p.Parse(ctx, fileUID, doc)
		c.Assert(err, qt.IsNil)
		second, err := p.Parse(ctx, fileUID, doc)
		c.Assert(err, qt.IsNil)
		c.Check(second, qt.DeepEquals, first)
	})

	c.Run("nok - not a PDF", func(c *qt.C) {
		_, err := p.Parse(ctx, fileUID, []byte("<html>404</html>"))
		c.Check(err, qt.ErrorIs, errdomain.ErrParse)
	})

	c.Run("nok - truncated document", func(c *qt.C) {
		doc := parsertest.BuildPDF("Page one text")
		_, err := p.Parse(ctx, fileUID, doc[:len(doc)/2])
		c.Check(err, qt.ErrorIs, errdomain.ErrParse)
	})

	c.Run("nok - no pages", func(c *qt.C) {
		_, err := p.Parse(ctx, fileUID, parsertest.BuildPDF())
		c.Check(err, qt.ErrorIs, errdomain.ErrParse)
	})

	c.Run("nok - cancelled", func(c *qt.C) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := p.Parse(cctx, fileUID, parsertest.BuildPDF("text"))
		c.Check(err, qt.ErrorIs, context.Canceled)
	})
}

func TestNormalize(t *testing.T) {
	c := qt.New(t)

	testcases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  \n\t ", want: ""},
		{in: "  Hello \n\n  world\t!  ", want: "Hello world !"},
		{in: "nul\x00byte", want: "nulbyte"},
		{in: "bad\xffutf8", want: "badutf8"},
	}

	for _, tc := range testcases {
		c.Run(tc.in, func(c *qt.C) {
			c.Check(Normalize(tc.in), qt.Equals, tc.want)
		})
	}
}
