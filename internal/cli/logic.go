package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/depsize/internal/gomod"
	"github.com/idelchi/depsize/internal/report"
	"github.com/idelchi/depsize/internal/sizer"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output to stderr if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func logic(options Options) error {
	log := logger{enabled: options.Debug}
	ctx := context.Background()

	manifest, err := gomod.FindManifest(options.Dir)
	if err != nil {
		return err
	}

	log.printf("[debug]: manifest: %s\n", manifest)

	reqs, err := gomod.ParseRequirements(manifest)
	if err != nil {
		return err
	}

	log.printf("[debug]: requirements: %d (%d direct)\n", len(reqs), len(gomod.DirectModulePaths(reqs)))

	modules, err := gomod.Resolver{}.List(ctx, filepath.Dir(manifest))
	if err != nil {
		return err
	}

	log.printf("[debug]: resolved modules: %d\n", len(modules))

	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that rewrites a single stderr line in place
	var progress func(done, total int)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\r\033[2KSizing… %d/%d modules\r", done, total)
		}
	}

	// Warnings can arrive from concurrent sizing tasks.
	var warnMu sync.Mutex

	warn := func(format string, args ...any) {
		warnMu.Lock()
		defer warnMu.Unlock()

		if enableProgress {
			fmt.Fprint(os.Stderr, "\r\033[2K")
		}

		fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
	}

	collector := report.Collector{
		Size:     sizer.Sizer{Warn: warn}.Size,
		Warn:     warn,
		Progress: progress,
	}

	sizes, err := collector.Collect(ctx, modules)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	rows := report.AtLeast(report.Rows(reqs, modules, sizes), options.MinSize)
	total := report.Total(rows)

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(rows, total, os.Stdout)
	case "table":
		return report.Render(os.Stdout, rows, total)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
