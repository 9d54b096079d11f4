// Package cli implements the depsize command-line interface.
package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// Options configures a report run.
type Options struct {
	// Dir is the directory the manifest search starts from.
	Dir string
	// Output represents output format (table or json).
	Output string
	// MinSize is the minimum row size in bytes.
	MinSize uint64
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	var (
		options    Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	root := &cobra.Command{
		Use:   "depsize",
		Short: "Report the on-disk size of each direct dependency",
		Long: heredoc.Doc(`
			depsize reports the on-disk footprint of each direct dependency of the
			nearest Go module, aggregated across all versions resolved into the
			workspace.

			Resolution is delegated to the go command. Every resolved module is
			sized concurrently, honoring .gitignore files found inside the module
			directories, and each direct dependency is reported at its highest
			resolved version, sorted by size, followed by a grand total.

			Run it anywhere inside a module; the nearest go.mod anchors the report.
		`),
		Version:       c.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				options.MinSize = size
			}

			return logic(options)
		},
	}

	flags := root.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.StringVar(&minSizeStr, "min-size", "", "Omit dependencies smaller than this size (e.g. 1MB)")
	flags.StringVarP(&options.Dir, "chdir", "C", ".", "Run as if started in this directory")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	return root.Execute()
}
