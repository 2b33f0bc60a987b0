package odt

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

func createODT(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	mime, err := w.Create("mimetype")
	require.NoError(t, err)
	_, err = mime.Write([]byte("application/vnd.oasis.opendocument.text"))
	require.NoError(t, err)

	content, err := w.Create("content.xml")
	require.NoError(t, err)
	_, err = content.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<office:document-content ` +
		`xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" ` +
		`xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">` +
		`<office:body><office:text>` + body + `</office:text></office:body>` +
		`</office:document-content>`))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.Equal(t, []string{".odt"}, normaliser.Formats())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "paragraphs joined by space",
			body: `<text:p>First</text:p><text:p>Second</text:p>`,
			want: "First Second",
		},
		{
			name: "spans inside paragraph",
			body: `<text:p>Budget <text:span>2024</text:span> plan</text:p>`,
			want: "Budget 2024 plan",
		},
		{
			name: "empty paragraphs skipped",
			body: `<text:p/><text:p>Only</text:p><text:p></text:p>`,
			want: "Only",
		},
		{
			name: "headings are not paragraphs",
			body: `<text:h>Title</text:h><text:p>Body</text:p>`,
			want: "Body",
		},
		{
			name: "space element",
			body: `<text:p>a<text:s/>b</text:p>`,
			want: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Extract(context.Background(), "a.odt", createODT(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Invalid(t *testing.T) {
	_, err := New().Extract(context.Background(), "a.odt", []byte("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	require.NoError(t, w.Close())
	_, err = New().Extract(context.Background(), "a.odt", buf.Bytes())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_MalformedXML(t *testing.T) {
	_, err := New().Extract(context.Background(), "a.odt", createODT(t, `<text:p>unclosed`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
