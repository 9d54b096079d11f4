package report

import (
	"context"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/depsize/internal/gomod"
)

// labelWidth is the minimum width of the label column.
const labelWidth = 25

// SizeFunc computes the total byte size of a directory tree.
type SizeFunc func(ctx context.Context, root string) (uint64, error)

// Row is one printed line of the report.
type Row struct {
	// Label is the display form "path (vX.Y.Z)".
	Label string `json:"label"`
	// Bytes is the total on-disk size.
	Bytes uint64 `json:"bytes"`
}

// Collector sizes resolved modules concurrently.
type Collector struct {
	// Size computes the size of one module directory.
	Size SizeFunc
	// Warn receives a message per module whose sizing failed. Nil discards.
	Warn func(format string, args ...any)
	// Progress, if non-nil, is invoked after each module finishes with the
	// number of completed modules and the total scheduled.
	Progress func(done, total int)
}

// Collect launches one sizing task per resolved module and gathers the
// results into an identity-keyed map. Main modules and modules without an
// on-disk directory are never scheduled. A module whose sizing fails is
// warned about and left out of the map; it does not abort the collection.
// Results are inserted by this goroutine alone as tasks complete, so the
// map needs no lock.
func (c Collector) Collect(ctx context.Context, modules []gomod.Module) (map[gomod.Identity]uint64, error) {
	type taskResult struct {
		id    gomod.Identity
		bytes uint64
	}

	candidates := make([]gomod.Module, 0, len(modules))

	for _, mod := range modules {
		if mod.Main || mod.Dir == "" {
			continue
		}

		candidates = append(candidates, mod)
	}

	group, ctx := errgroup.WithContext(ctx)
	results := make(chan taskResult)

	for _, mod := range candidates {
		mod := mod

		group.Go(func() error {
			bytes, err := c.Size(ctx, mod.Dir)
			if err != nil {
				c.warnf("sizing %s: %v", mod.Identity().Label(), err)

				return nil
			}

			select {
			case results <- taskResult{id: mod.Identity(), bytes: bytes}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	waitErr := make(chan error, 1)

	go func() {
		waitErr <- group.Wait()
		close(results)
	}()

	sizes := make(map[gomod.Identity]uint64, len(candidates))
	done := 0

	for result := range results {
		sizes[result.id] = result.bytes

		done++
		if c.Progress != nil {
			c.Progress(done, len(candidates))
		}
	}

	if err := <-waitErr; err != nil {
		return nil, err
	}

	return sizes, nil
}

func (c Collector) warnf(format string, args ...any) {
	if c.Warn != nil {
		c.Warn(format, args...)
	}
}

// Rows joins each distinct direct dependency path to the highest resolved
// version of that path and to its collected size, sorted ascending by size.
// A path with no resolved module or no recorded size contributes no row.
func Rows(reqs []gomod.Requirement, modules []gomod.Module, sizes map[gomod.Identity]uint64) []Row {
	paths := gomod.DirectModulePaths(reqs)
	rows := make([]Row, 0, len(paths))

	for _, path := range paths {
		mod, ok := gomod.MaxVersion(modules, path)
		if !ok {
			continue
		}

		size, ok := sizes[mod.Identity()]
		if !ok {
			continue
		}

		rows = append(rows, Row{Label: mod.Identity().Label(), Bytes: size})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Bytes < rows[j].Bytes
	})

	return rows
}

// Total sums the sizes of the given rows.
func Total(rows []Row) uint64 {
	var total uint64

	for _, row := range rows {
		total += row.Bytes
	}

	return total
}

// AtLeast returns the rows whose size reaches minSize, preserving order.
func AtLeast(rows []Row, minSize uint64) []Row {
	if minSize == 0 {
		return rows
	}

	kept := make([]Row, 0, len(rows))

	for _, row := range rows {
		if row.Bytes >= minSize {
			kept = append(kept, row)
		}
	}

	return kept
}

// Render prints one line per row followed by the grand total.
func Render(w io.Writer, rows []Row, total uint64) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-*s : %s\n", labelWidth, row.Label, FormatSize(row.Bytes)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "> Total size: %s\n", FormatSize(total)); err != nil {
		return err
	}

	return nil
}
