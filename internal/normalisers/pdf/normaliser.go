// Package pdf extracts the text layer of .pdf files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Extractor = (*Normaliser)(nil)

// Normaliser handles PDF documents.
type Normaliser struct{}

// New creates a new PDF normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Formats returns the suffixes this normaliser handles.
func (n *Normaliser) Formats() []string {
	return []string{".pdf"}
}

// Extract concatenates the text of every page. A PDF without a text layer
// (a scan) yields "". Parser panics on malformed files become errors, and a
// page that panics is skipped.
func (n *Normaliser) Extract(ctx context.Context, _ string, content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf parser: %v", domain.ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b.WriteString(pageText(reader, i))
	}

	return b.String(), nil
}

// pageText returns the text runs of one page, or "" if the page is
// empty or cannot be decoded.
func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}

	var b strings.Builder
	for _, run := range page.Content().Text {
		b.WriteString(run.S)
	}
	return b.String()
}
