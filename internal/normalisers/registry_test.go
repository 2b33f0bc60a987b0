package normalisers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// stubExtractor returns a fixed text or error.
type stubExtractor struct {
	formats []string
	text    string
	err     error
}

func (s *stubExtractor) Formats() []string { return s.formats }

func (s *stubExtractor) Extract(_ context.Context, _ string, _ []byte) (string, error) {
	return s.text, s.err
}

func TestRegistry_Dispatch(t *testing.T) {
	registry := NewRegistry(
		&stubExtractor{formats: []string{".doc"}, text: "legacy"},
		&stubExtractor{formats: []string{".docx"}, text: "modern"},
		&stubExtractor{formats: []string{".xls", ".XLSX"}, text: "table"},
	)
	ctx := context.Background()

	tests := []struct {
		name   string
		want   string
		format string
	}{
		{name: "a.doc", want: "legacy", format: ".doc"},
		{name: "a.docx", want: "modern", format: ".docx"},
		{name: "A.DOCX", want: "modern", format: ".docx"},
		{name: "sheet.xlsx", want: "table", format: ".xlsx"},
		{name: "sheet.Xls", want: "table", format: ".xls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := registry.Extract(ctx, tt.name, []byte("x"))
			require.True(t, result.OK())
			assert.Equal(t, tt.want, result.Text)
			assert.Equal(t, tt.format, result.Format)
		})
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	registry := NewRegistry(&stubExtractor{formats: []string{".txt"}})

	for _, name := range []string{"image.png", "README", "archive.tar.gz"} {
		result := registry.Extract(context.Background(), name, []byte("data"))
		assert.Empty(t, result.Text)
		assert.ErrorIs(t, result.Err, domain.ErrUnsupportedType)
	}
}

func TestRegistry_ExtractorError(t *testing.T) {
	cause := errors.New("corrupt")
	registry := NewRegistry(&stubExtractor{formats: []string{".pdf"}, text: "partial", err: cause})

	result := registry.Extract(context.Background(), "bad.pdf", nil)

	assert.Empty(t, result.Text)
	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err, domain.ErrExtraction)
	assert.ErrorIs(t, result.Err, cause)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry(&stubExtractor{formats: []string{".txt"}, text: "old"})
	registry.Register(&stubExtractor{formats: []string{".txt"}, text: "new"})

	result := registry.Extract(context.Background(), "a.txt", nil)
	assert.Equal(t, "new", result.Text)
}

func TestRegistry_SupportedFormats(t *testing.T) {
	registry := NewRegistry(
		&stubExtractor{formats: []string{".txt"}},
		&stubExtractor{formats: []string{".PDF", ".docx"}},
	)

	assert.Equal(t, []string{".docx", ".pdf", ".txt"}, registry.SupportedFormats())
}
