package domain

import "strings"

// Category is a fixed filename-suffix classification used for browsing.
type Category string

// Available categories, in menu order.
const (
	CategoryDocuments Category = "documents"
	CategoryTables    Category = "tables"
	CategoryPDF       Category = "pdf"
)

var categorySuffixes = map[Category][]string{
	CategoryDocuments: {".doc", ".docx", ".odt", ".txt"},
	CategoryTables:    {".xls", ".xlsx"},
	CategoryPDF:       {".pdf"},
}

// Categories returns all categories in menu order.
func Categories() []Category {
	return []Category{CategoryDocuments, CategoryTables, CategoryPDF}
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	_, ok := categorySuffixes[c]
	return ok
}

// Suffixes returns the filename suffixes belonging to the category.
// Unknown categories have none.
func (c Category) Suffixes() []string {
	return append([]string(nil), categorySuffixes[c]...)
}

// Matches reports whether the lowercased name ends with one of the
// category's suffixes.
func (c Category) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range categorySuffixes[c] {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Label returns the menu label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryDocuments:
		return "📝 Documents"
	case CategoryTables:
		return "📊 Tables"
	case CategoryPDF:
		return "📜 PDF"
	default:
		return unknownDescription
	}
}
