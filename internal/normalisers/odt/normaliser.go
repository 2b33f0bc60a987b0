// Package odt extracts paragraph text from OpenDocument text files.
package odt

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

const (
	// contentPart holds the document body in an ODF package.
	contentPart = "content.xml"

	// textNamespace is the ODF text namespace URI.
	textNamespace = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
)

// Normaliser handles ODT documents.
type Normaliser struct{}

// New creates a new ODT normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Formats returns the suffixes this normaliser handles.
func (n *Normaliser) Formats() []string {
	return []string{".odt"}
}

// Extract joins the non-empty text:p paragraphs with a single space.
func (n *Normaliser) Extract(_ context.Context, _ string, content []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: not an odt archive: %v", domain.ErrInvalidInput, err)
	}

	file, err := reader.Open(contentPart)
	if err != nil {
		return "", fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, contentPart)
	}
	defer file.Close()

	return paragraphs(file)
}

// paragraphs streams content.xml, collecting the character data of each
// text:p element including nested spans.
func paragraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		result  []string
		current strings.Builder
		depth   int
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", errors.Join(domain.ErrInvalidInput, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if isParagraph(t.Name) {
				depth++
				continue
			}
			if depth > 0 && t.Name.Space == textNamespace && t.Name.Local == "s" {
				current.WriteString(" ")
			}
		case xml.EndElement:
			if !isParagraph(t.Name) || depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				if current.Len() > 0 {
					result = append(result, current.String())
				}
				current.Reset()
			}
		case xml.CharData:
			if depth > 0 {
				current.Write(t)
			}
		}
	}

	return strings.Join(result, " "), nil
}

func isParagraph(name xml.Name) bool {
	return name.Space == textNamespace && name.Local == "p"
}
