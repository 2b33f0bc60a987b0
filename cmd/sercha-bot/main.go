// Package main provides the entry point for the sercha-bot CLI.
package main

import (
	"os"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
