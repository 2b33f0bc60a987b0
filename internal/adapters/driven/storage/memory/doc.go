// Package memory provides in-memory implementations of driven ports.
//
// DocumentIndex holds the searchable corpus for the lifetime of the process.
// AllowList holds the chat identities permitted to use the bot. ConfigStore is
// a map-backed configuration source used in tests.
package memory
