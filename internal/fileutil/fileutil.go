package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// HashFile streams path through SHA-256 and returns the hex digest.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AcquireLock takes the exclusive advisory lock guarding a working
// directory, failing fast when another process holds it. The returned
// release function must be called exactly once.
func AcquireLock(path string) (func() error, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another winnow process is already using %s", filepath.Dir(path))
	}
	return lock.Unlock, nil
}

// OS performs file operations against the real filesystem. It satisfies
// the collaborator interfaces of packages that delete or probe files and
// keeps those packages testable with fakes.
type OS struct{}

func (OS) Exists(path string) bool { return Exists(path) }

func (OS) Remove(path string) error { return os.Remove(path) }
