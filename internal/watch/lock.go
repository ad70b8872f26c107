package watch

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyWatching is returned when another process watches the workspace.
var ErrAlreadyWatching = errors.New("another watcher is already running for this workspace")

// LockPath returns the lock file for root inside locksDir.
func LockPath(locksDir, root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(locksDir, "watch-"+hex.EncodeToString(sum[:8])+".lock")
}

// Lock holds the per-workspace watcher lock.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the watcher lock for root without blocking.
func AcquireLock(locksDir, root string) (*Lock, error) {
	if err := os.MkdirAll(locksDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create locks directory: %w", err)
	}
	fl := flock.New(LockPath(locksDir, root))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring watch lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyWatching
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
