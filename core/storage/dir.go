package storage

import (
	"fmt"
	"os"
)

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error; an existing non-directory is.
func EnsureDir(dir string, perm os.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToCreateDir, err)
	}
	return nil
}
