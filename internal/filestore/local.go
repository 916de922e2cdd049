package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local stores uploaded content on the local filesystem under a base
// directory, which is also what the HTTP layer serves statically.
type Local struct {
	baseDir string
}

// NewLocal creates the base directory if needed and returns a store over it
func NewLocal(baseDir string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", baseDir, err)
	}
	return &Local{baseDir: baseDir}, nil
}

// Dir returns the base directory
func (l *Local) Dir() string {
	return l.baseDir
}

// Save writes src to name under the base directory and returns the stored
// path. On any write failure the partial file is removed so no orphan is
// left behind.
func (l *Local) Save(name string, src io.Reader) (string, error) {
	path := filepath.Join(l.baseDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}

// Remove deletes a previously stored file. A file that is already gone is
// not an error.
func (l *Local) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
