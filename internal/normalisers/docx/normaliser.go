// Package docx extracts paragraph text from .docx files.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Extractor = (*Normaliser)(nil)

// documentPart is the main body of a WordprocessingML package.
const documentPart = "word/document.xml"

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Formats returns the suffixes this normaliser handles.
func (n *Normaliser) Formats() []string {
	return []string{".docx"}
}

// Extract joins the non-empty paragraphs of the document body with a single
// space.
func (n *Normaliser) Extract(_ context.Context, _ string, content []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: not a docx archive: %v", domain.ErrInvalidInput, err)
	}

	part, err := readPart(reader, documentPart)
	if err != nil {
		return "", err
	}

	return parseDocumentXML(part)
}

// readPart returns the bytes of a named archive member.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, name)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

// paragraph holds the text of a w:p element in document order. Runs may sit
// directly under the paragraph or inside w:hyperlink, w:ins and similar
// wrappers; tracked deletions are skipped.
type paragraph struct {
	Text string
}

type textElement struct {
	Content string `xml:",chardata"`
}

// UnmarshalXML walks the paragraph subtree and collects every w:t.
func (p *paragraph) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				var t textElement
				if err := d.DecodeElement(&t, &el); err != nil {
					return err
				}
				b.WriteString(t.Content)
			case "del":
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				p.Text = b.String()
				return nil
			}
			depth--
		}
	}
}

// parseDocumentXML extracts the paragraph texts.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", errors.Join(domain.ErrInvalidInput, err)
	}

	paragraphs := make([]string, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		if para.Text != "" {
			paragraphs = append(paragraphs, para.Text)
		}
	}

	return strings.Join(paragraphs, " "), nil
}
