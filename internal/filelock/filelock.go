// Package filelock serializes organize runs so two processes never move
// files out of the same directory at once.
package filelock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating access across processes.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// LockDir creates the run lock guarding a target directory. The lock file
// lives in the system temp directory, keyed by a hash of the absolute
// target path, so it never shows up among the files being organized.
func LockDir(dir string) (*FileLock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	sum := sha256.Sum256([]byte(abs))
	name := fmt.Sprintf("tidy-%x.lock", sum[:8])
	return NewFileLock(filepath.Join(os.TempDir(), name)), nil
}

// Path returns the location of the lock file.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
// Returns an error if the lock cannot be acquired.
func (fl *FileLock) Lock() error {
	err := fl.flock.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
// Returns an error if the lock operation fails.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
// Returns an error if the unlock operation fails.
func (fl *FileLock) Unlock() error {
	err := fl.flock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}
