// Package plaintext extracts text from .txt files.
package plaintext

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Extractor = (*Normaliser)(nil)

// byteOrderMark is stripped from the start of decoded text.
const byteOrderMark = "\uFEFF"

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Formats returns the suffixes this normaliser handles.
func (n *Normaliser) Formats() []string {
	return []string{".txt"}
}

// Extract decodes the bytes as UTF-8, dropping invalid sequences.
// The result is NFC-normalised so composed and decomposed forms match.
func (n *Normaliser) Extract(_ context.Context, _ string, content []byte) (string, error) {
	text := strings.ToValidUTF8(string(content), "")
	text = strings.TrimPrefix(text, byteOrderMark)
	return norm.NFC.String(text), nil
}
