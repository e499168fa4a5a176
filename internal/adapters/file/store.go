package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads tree files and writes strategy files on the local filesystem.
//
// Writes are atomic: content goes to a temporary file in the destination directory
// first, is synced, and is renamed into place only on success. A failed conversion
// therefore never creates or truncates the destination file.
type Store struct{}

// New creates a new Store.
func New() *Store {
	return &Store{}
}

// ReadTree loads the raw tree text from path.
func (s *Store) ReadTree(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read tree file: %w", err)
	}
	return string(data), nil
}

// WriteStrategies writes the given lines to path, one per line, each terminated by a
// newline.
func (s *Store) WriteStrategies(path string, lines []string) (err error) {
	dir := filepath.Dir(path)

	// Same directory as the destination to guarantee the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	for _, line := range lines {
		if _, err = tmp.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write strategies: %w", err)
		}
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync strategies: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move strategies into place: %w", err)
	}
	return nil
}
