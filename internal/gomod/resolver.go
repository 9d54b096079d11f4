package gomod

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Resolver lists the modules the Go toolchain selects for a workspace.
type Resolver struct {
	// GoBin overrides the go binary to invoke. Empty means $PATH lookup.
	GoBin string
}

// List runs `go list -m -json all` in dir and decodes the resulting module
// stream. The module graph is target-independent, so the listing covers
// every platform and includes the main module's test-only requirements —
// the broadest closure a build could pull in.
func (r Resolver) List(ctx context.Context, dir string) ([]Module, error) {
	bin := r.GoBin
	if bin == "" {
		var err error

		bin, err = exec.LookPath("go")
		if err != nil {
			return nil, fmt.Errorf("go not found in PATH: %w", err)
		}
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, bin, "list", "-m", "-json", "all")
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("resolving module graph: %s: %w", msg, err)
		}

		return nil, fmt.Errorf("resolving module graph: %w", err)
	}

	return DecodeModules(&stdout)
}

// DecodeModules parses the concatenated JSON objects emitted by
// `go list -m -json`.
func DecodeModules(r io.Reader) ([]Module, error) {
	dec := json.NewDecoder(r)

	var modules []Module

	for {
		var mod Module

		err := dec.Decode(&mod)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decoding module list: %w", err)
		}

		modules = append(modules, mod)
	}

	return modules, nil
}
