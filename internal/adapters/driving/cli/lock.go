package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// serveLockFile is created in the config directory while a bot is running.
const serveLockFile = "serve.lock"

// errAlreadyRunning is returned when another serve process holds the lock.
var errAlreadyRunning = errors.New("another sercha-bot serve process is already running")

// instanceLock keeps a second bot from polling with the same token.
type instanceLock struct {
	path  string
	flock *flock.Flock
}

func newInstanceLock(dir string) *instanceLock {
	path := filepath.Join(dir, serveLockFile)
	return &instanceLock{path: path, flock: flock.New(path)}
}

// Acquire takes the lock without blocking.
func (l *instanceLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("%w (lock %s)", errAlreadyRunning, l.path)
	}
	return nil
}

// Release drops the lock. It is safe to call on an unheld lock.
func (l *instanceLock) Release() error {
	if !l.flock.Locked() {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release %s: %w", l.path, err)
	}
	return nil
}
