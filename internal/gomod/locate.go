package gomod

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestName is the file that anchors a Go module.
const ManifestName = "go.mod"

// FindManifest walks upward from dir and returns the path of the nearest
// go.mod. It fails when the filesystem root is reached without a hit.
func FindManifest(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %q: %w", dir, err)
	}

	for current := start; ; {
		candidate := filepath.Join(current, ManifestName)

		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("accessing %q: %w", candidate, err)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no %s found in %q or any parent directory", ManifestName, start)
		}

		current = parent
	}
}
