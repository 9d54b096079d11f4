package sizer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Sizer computes directory sizes. The zero value is ready to use.
type Sizer struct {
	// Warn receives recoverable per-entry traversal failures. Nil discards
	// them. The function must be safe for concurrent use.
	Warn func(format string, args ...any)
}

// collector aggregates the running total from concurrent fastwalk callbacks
// using a mutex, since fastwalk invokes the callback from multiple
// goroutines.
type collector struct {
	mu         sync.Mutex
	totalBytes uint64
	errorCount int64
}

func (c *collector) add(size uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalBytes += size
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

func (c *collector) totals() (uint64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalBytes, c.errorCount
}

// Size walks root and returns the byte length of every regular file under
// it, skipping entries matched by ignore files. Symlinks and directories
// contribute nothing. Per-entry walk errors are warned about and skipped;
// a metadata read failure on an accepted file aborts the whole aggregation.
// Every invocation re-walks the tree from scratch.
func (s Sizer) Size(ctx context.Context, root string) (uint64, error) {
	root = filepath.Clean(root)

	if info, err := os.Stat(root); err != nil {
		return 0, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !info.IsDir() {
		return 0, fmt.Errorf("path %q is not a directory", root)
	}

	var (
		result collector
		scopes sync.Map // directory path -> *ignoreScope
	)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.warnf("skipping %q: %v", path, err)
			result.addError()

			return nil //nolint:nilerr // Entry errors are tolerated by contract
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// The root's own ignore file applies to everything below it.
		if path == root {
			scopes.Store(path, loadIgnoreScope(nil, path))

			return nil
		}

		// Parent directories are always visited before their entries, so
		// the scope chain is present by the time we get here.
		var scope *ignoreScope
		if value, ok := scopes.Load(filepath.Dir(path)); ok {
			scope, _ = value.(*ignoreScope)
		}

		if d.IsDir() {
			if scope.excluded(path) {
				return filepath.SkipDir
			}

			scopes.Store(path, loadIgnoreScope(scope, path))

			return nil
		}

		if scope.excluded(path) {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("reading metadata for %q: %w", path, err)
		}

		result.add(uint64(info.Size())) //nolint:gosec // Regular file sizes are non-negative

		return nil
	})
	if walkErr != nil {
		return 0, walkErr
	}

	total, _ := result.totals()

	return total, nil
}

func (s Sizer) warnf(format string, args ...any) {
	if s.Warn != nil {
		s.Warn(format, args...)
	}
}
