// Package logger provides process-wide logging for the sercha bot.
// Info, Warn and Error lines are always written; Debug and Section lines
// only appear when verbose mode is enabled via the --verbose flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	now                  = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetTimestamps prefixes every line with an RFC 3339 timestamp.
// Long-running commands (serve) turn this on; one-shot commands leave it off.
func SetTimestamps(v bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = v
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write("[DEBUG] ", format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write("[INFO] ", format, args...)
}

// Warn prints a warning. Absorbed failures (extraction, remote listing,
// callback acknowledgement) are reported here.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write("[WARN] ", format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write("[ERROR] ", format, args...)
}

// write formats one log line (caller must hold the read lock).
func write(level, format string, args ...any) {
	prefix := level
	if timestamps {
		prefix = now().Format(time.RFC3339) + " " + level
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
