// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Connector: Fetches raw documents from one source (local folder, public cloud folder)
//   - Extractor: Converts one file format into plain text
//   - ExtractorRegistry: Dispatches a file to the right Extractor by suffix
//   - DocumentIndex: In-memory fingerprint -> document mapping
//   - ContentFetcher: Opens the bytes behind a document location at retrieval time
//   - AccessList: Allow-list membership test for chat identities
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
