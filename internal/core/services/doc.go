// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never import adapters, connectors or normalisers; those are
// injected at construction time by the CLI wiring.
package services
