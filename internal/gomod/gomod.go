package gomod

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// DepKind classifies how a dependency is declared in go.mod.
type DepKind int

const (
	// KindDirect is a require entry without an "// indirect" comment.
	KindDirect DepKind = iota
	// KindIndirect is a require entry marked "// indirect".
	KindIndirect
	// KindTool is a dependency introduced by a tool directive.
	KindTool
)

// String returns the go.mod-facing name of the kind.
func (k DepKind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindIndirect:
		return "indirect"
	case KindTool:
		return "tool"
	default:
		return fmt.Sprintf("DepKind(%d)", int(k))
	}
}

// Requirement is one dependency declaration from the manifest.
type Requirement struct {
	// ModulePath is the declared module path (package path for tool entries).
	ModulePath string
	// Version is the declared minimum version. Empty for tool entries.
	Version string
	// Kind classifies the declaration.
	Kind DepKind
}

// Module is one entry of the resolved module set as reported by
// `go list -m -json`.
type Module struct {
	// Path is the module path.
	Path string `json:"Path"`
	// Version is the selected version. Empty for the main module.
	Version string `json:"Version"`
	// Dir is the on-disk location of the module (module cache for
	// dependencies). Empty when the module has not been downloaded.
	Dir string `json:"Dir"`
	// Main reports whether this is a main module of the workspace.
	Main bool `json:"Main"`
	// Indirect reports whether the module is only an indirect dependency.
	Indirect bool `json:"Indirect"`
}

// Identity pins a module path to one concrete version.
type Identity struct {
	Path    string
	Version string
}

// Identity returns the module's (path, version) identity.
func (m Module) Identity() Identity {
	return Identity{Path: m.Path, Version: m.Version}
}

// Label returns the display form "path (vX.Y.Z)". Module versions already
// carry their leading "v".
func (id Identity) Label() string {
	return fmt.Sprintf("%s (%s)", id.Path, id.Version)
}

// MaxVersion returns the resolved module with the highest semantic version
// among all modules sharing path. A workspace can select several versions of
// the same path (one per main module), so the scan covers the whole set, not
// only the version a particular go.mod asked for.
func MaxVersion(modules []Module, path string) (Module, bool) {
	var (
		best  Module
		found bool
	)

	for _, mod := range modules {
		if mod.Path != path {
			continue
		}

		if !found || semver.Compare(mod.Version, best.Version) > 0 {
			best = mod
			found = true
		}
	}

	return best, found
}

// DirectModulePaths returns the distinct module paths of the direct
// requirements, preserving declaration order. Duplicate declarations
// collapse to one entry.
func DirectModulePaths(reqs []Requirement) []string {
	seen := make(map[string]struct{}, len(reqs))
	paths := make([]string, 0, len(reqs))

	for _, req := range reqs {
		if req.Kind != KindDirect {
			continue
		}

		if _, ok := seen[req.ModulePath]; ok {
			continue
		}

		seen[req.ModulePath] = struct{}{}
		paths = append(paths, req.ModulePath)
	}

	return paths
}
