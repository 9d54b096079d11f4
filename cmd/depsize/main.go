// Package main is the entry point for the depsize CLI.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/depsize/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
