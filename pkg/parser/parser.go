// Package parser turns document bytes into page-level text units.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/logger"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// Page is the text of a single source page.
type Page struct {
	// PageIndex is 0-based and follows the source order.
	PageIndex int
	// Text is normalised: whitespace runs are collapsed and the text is
	// trimmed. It's empty for pages without extractable text.
	Text          string
	SourceFileUID types.FileUIDType
}

// IsBlank reports whether the page has no text.
func (p Page) IsBlank() bool {
	return p.Text == ""
}

// Parser converts document bytes into pages.
type Parser interface {
	// Parse returns one page per source page, in source order. It fails with
	// ErrParse when the bytes aren't a readable document. A single page that
	// can't be decoded yields an empty page.
	Parse(ctx context.Context, fileUID types.FileUIDType, data []byte) ([]Page, error)
}

type pdfParser struct{}

// NewPDFParser returns a Parser for PDF documents.
func NewPDFParser() Parser {
	return &pdfParser{}
}

var pdfHeader = []byte("%PDF-")

func (p *pdfParser) Parse(ctx context.Context, fileUID types.FileUIDType, data []byte) ([]Page, error) {
	log, _ := logger.GetZapLogger(ctx)
	log = log.With(zap.String("file_uid", fileUID.String()))

	if !bytes.HasPrefix(data, pdfHeader) {
		return nil, fmt.Errorf("%w: missing PDF header", errdomain.ErrParse)
	}

	reader, err := openPDF(data)
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%w: document has no pages", errdomain.ErrParse)
	}

	pages := make([]Page, 0, numPages)
	for i := range numPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := pageText(reader, i+1)
		if err != nil {
			log.Warn("Couldn't extract page text", zap.Int("page_index", i), zap.Error(err))
		}

		pages = append(pages, Page{
			PageIndex:     i,
			Text:          Normalize(text),
			SourceFileUID: fileUID,
		})
	}

	return pages, nil
}

// openPDF reads the document trailer and cross-reference table. The reader
// panics on some malformed inputs.
func openPDF(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader, err = nil, fmt.Errorf("%w: reading document: %v", errdomain.ErrParse, r)
		}
	}()

	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: reading document: %w", errdomain.ErrParse, err)
	}
	return reader, nil
}

// pageText extracts the text of the 1-based page num. Font resource names are
// scoped to their page.
func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("decoding page %d: %v", num, r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}

	fonts := map[string]*pdf.Font{}
	for _, name := range page.Fonts() {
		f := page.Font(name)
		fonts[name] = &f
	}

	return page.GetPlainText(fonts)
}

// Normalize collapses whitespace runs into single spaces, trims the result and
// drops NUL bytes and invalid UTF-8 sequences.
func Normalize(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.Join(strings.Fields(text), " ")
}
