// Package spreadsheet extracts cell text from .xls and .xlsx workbooks.
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Extractor = (*Normaliser)(nil)

// oleSignature opens every compound document, the container of BIFF workbooks.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Normaliser handles Excel workbooks in both binary and OOXML formats.
type Normaliser struct{}

// New creates a new spreadsheet normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Formats returns the suffixes this normaliser handles.
func (n *Normaliser) Formats() []string {
	return []string{".xls", ".xlsx"}
}

// Extract renders every row of every sheet as its cell values joined by a
// space, each row followed by one space.
func (n *Normaliser) Extract(ctx context.Context, name string, content []byte) (string, error) {
	if strings.EqualFold(filepath.Ext(name), ".xls") {
		return extractXLS(ctx, content)
	}
	return extractXLSX(ctx, content)
}

// extractXLSX reads an OOXML workbook.
func extractXLSX(ctx context.Context, content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: open xlsx: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		for _, row := range rows {
			writeRow(&b, row)
		}
	}
	return b.String(), nil
}

// extractXLS reads a legacy BIFF workbook. The parser panics on some
// malformed files, which is reported as an error.
func extractXLS(ctx context.Context, content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: xls parser: %v", domain.ErrExtraction, r)
		}
	}()

	if !bytes.HasPrefix(content, oleSignature) {
		return "", fmt.Errorf("%w: not an xls workbook", domain.ErrInvalidInput)
	}

	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return "", fmt.Errorf("%w: open xls: %v", domain.ErrInvalidInput, err)
	}

	var b strings.Builder
	for i := 0; i < wb.NumSheets(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			writeRow(&b, cells)
		}
	}
	return b.String(), nil
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.Join(cells, " "))
	b.WriteString(" ")
}
