// Package normalisers provides the text extractors for indexed file formats
// and the Registry that dispatches to them by filename suffix.
//
// Each sub-package handles one family of formats:
//
//   - plaintext: .txt
//   - pdf: .pdf
//   - docx: .docx
//   - doc: .doc (via antiword)
//   - spreadsheet: .xls, .xlsx
//   - odt: .odt
//
// Extractors are registered with the Registry at startup.
package normalisers
