// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMarkerMissing is returned by RequireFile when the marker file is absent.
var ErrMarkerMissing = errors.New("marker file not found")

// RequireFile checks that dir contains a regular file called name. It is used
// to make sure the tool runs from the project root.
func RequireFile(dir, name string) error {
	if name == "" {
		panic("marker name must not be empty")
	}

	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMarkerMissing, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMarkerMissing, path)
	}
	return nil
}
