// Package domain defines the core business entities for the sercha bot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: an indexed file (name, location, extracted text)
//   - RawDocument: opaque bytes fetched by a connector
//   - Category: fixed filename-suffix classification
//   - Settings: static process configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
