package gomod

import (
	"fmt"
	"os"

	"golang.org/x/mod/modfile"
)

// ParseRequirements reads the manifest at path and classifies every
// dependency it declares. Require entries become KindDirect or KindIndirect
// depending on their "// indirect" comment; tool directives become KindTool
// entries carrying the tool's package path.
func ParseRequirements(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	reqs := make([]Requirement, 0, len(file.Require)+len(file.Tool))

	for _, req := range file.Require {
		kind := KindDirect
		if req.Indirect {
			kind = KindIndirect
		}

		reqs = append(reqs, Requirement{
			ModulePath: req.Mod.Path,
			Version:    req.Mod.Version,
			Kind:       kind,
		})
	}

	for _, tool := range file.Tool {
		reqs = append(reqs, Requirement{
			ModulePath: tool.Path,
			Kind:       KindTool,
		})
	}

	return reqs, nil
}
