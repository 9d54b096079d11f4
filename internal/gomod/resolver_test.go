package gomod_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/depsize/internal/gomod"
)

// listFixture mimics the concatenated JSON objects of `go list -m -json all`.
const listFixture = `{
	"Path": "example.com/app",
	"Main": true,
	"Dir": "/home/user/app",
	"GoMod": "/home/user/app/go.mod"
}
{
	"Path": "github.com/direct/dep",
	"Version": "v1.2.3",
	"Dir": "/home/user/go/pkg/mod/github.com/direct/dep@v1.2.3"
}
{
	"Path": "github.com/hidden/dep",
	"Version": "v0.9.0",
	"Indirect": true,
	"Dir": "/home/user/go/pkg/mod/github.com/hidden/dep@v0.9.0"
}
{
	"Path": "github.com/undownloaded/dep",
	"Version": "v0.1.0"
}
`

func TestDecodeModules(t *testing.T) {
	modules, err := gomod.DecodeModules(strings.NewReader(listFixture))
	require.NoError(t, err)
	require.Len(t, modules, 4)

	assert.Equal(t, gomod.Module{
		Path: "example.com/app",
		Main: true,
		Dir:  "/home/user/app",
	}, modules[0])

	assert.Equal(t, gomod.Module{
		Path:    "github.com/direct/dep",
		Version: "v1.2.3",
		Dir:     "/home/user/go/pkg/mod/github.com/direct/dep@v1.2.3",
	}, modules[1])

	assert.True(t, modules[2].Indirect)
	assert.Empty(t, modules[3].Dir)
}

func TestDecodeModulesEmpty(t *testing.T) {
	modules, err := gomod.DecodeModules(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, modules)
}

func TestDecodeModulesMalformed(t *testing.T) {
	_, err := gomod.DecodeModules(strings.NewReader(`{"Path": "a"} not json`))
	assert.Error(t, err)
}
