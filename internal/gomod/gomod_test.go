package gomod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/depsize/internal/gomod"
)

func TestMaxVersion(t *testing.T) {
	modules := []gomod.Module{
		{Path: "example.com/a", Version: "v1.2.0"},
		{Path: "example.com/a", Version: "v1.10.0"},
		{Path: "example.com/a", Version: "v1.3.0"},
		{Path: "example.com/b", Version: "v0.1.0"},
	}

	mod, ok := gomod.MaxVersion(modules, "example.com/a")
	require.True(t, ok)
	assert.Equal(t, "v1.10.0", mod.Version)
}

func TestMaxVersionPrereleaseOrdersBeforeRelease(t *testing.T) {
	modules := []gomod.Module{
		{Path: "example.com/a", Version: "v1.2.0-rc.1"},
		{Path: "example.com/a", Version: "v1.2.0"},
	}

	mod, ok := gomod.MaxVersion(modules, "example.com/a")
	require.True(t, ok)
	assert.Equal(t, "v1.2.0", mod.Version)
}

func TestMaxVersionUnknownPath(t *testing.T) {
	_, ok := gomod.MaxVersion(nil, "example.com/nope")
	assert.False(t, ok)
}

func TestDirectModulePaths(t *testing.T) {
	reqs := []gomod.Requirement{
		{ModulePath: "example.com/a", Kind: gomod.KindDirect},
		{ModulePath: "example.com/b", Kind: gomod.KindIndirect},
		{ModulePath: "example.com/a", Kind: gomod.KindDirect},
		{ModulePath: "example.com/c", Kind: gomod.KindTool},
		{ModulePath: "example.com/d", Kind: gomod.KindDirect},
	}

	assert.Equal(t, []string{"example.com/a", "example.com/d"}, gomod.DirectModulePaths(reqs))
}

func TestIdentityLabel(t *testing.T) {
	mod := gomod.Module{Path: "example.com/a", Version: "v1.2.3"}

	assert.Equal(t, "example.com/a (v1.2.3)", mod.Identity().Label())
}

func TestDepKindString(t *testing.T) {
	assert.Equal(t, "direct", gomod.KindDirect.String())
	assert.Equal(t, "indirect", gomod.KindIndirect.String())
	assert.Equal(t, "tool", gomod.KindTool.String())
}
