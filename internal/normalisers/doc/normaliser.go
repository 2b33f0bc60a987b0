// Package doc extracts text from legacy Word (.doc) files.
//
// Text is extracted by the antiword command-line tool, which must be
// installed separately.
package doc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Extractor = (*Normaliser)(nil)

// ToolName is the external converter binary.
const ToolName = "antiword"

// ErrToolNotFound indicates antiword is not installed.
var ErrToolNotFound = errors.New("antiword not found in PATH")

// CommandRunner executes external commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Normaliser handles .doc documents.
type Normaliser struct {
	runner CommandRunner
}

// New creates a .doc normaliser backed by the system antiword.
func New() *Normaliser {
	return NewWithRunner(execRunner{})
}

// NewWithRunner creates a .doc normaliser with a custom command runner.
func NewWithRunner(runner CommandRunner) *Normaliser {
	return &Normaliser{runner: runner}
}

// Formats returns the suffixes this normaliser handles.
func (n *Normaliser) Formats() []string {
	return []string{".doc"}
}

// CheckAvailable returns ErrToolNotFound if antiword is not installed.
func (n *Normaliser) CheckAvailable() error {
	if _, err := n.runner.LookPath(ToolName); err != nil {
		return ErrToolNotFound
	}
	return nil
}

// Extract writes the document to a temporary file and converts it with
// antiword. Output is trimmed of surrounding whitespace.
func (n *Normaliser) Extract(ctx context.Context, _ string, content []byte) (string, error) {
	if err := n.CheckAvailable(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "sercha-bot-*.doc")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	out, err := n.runner.Run(ctx, ToolName, "-w", "0", tmp.Name())
	if err != nil {
		return "", fmt.Errorf("%s: %w", ToolName, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// InstallInstructions returns platform hints for installing antiword.
func InstallInstructions() string {
	return `antiword is required to index .doc files.

Install it with:
  macOS:         brew install antiword
  Debian/Ubuntu: sudo apt install antiword
  Fedora:        sudo dnf install antiword`
}
