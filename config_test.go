package lattice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agiangrant/lattice/retained"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tree]\nindent = 20\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(20), cfg.Tree.Indent)
	assert.Equal(t, DefaultConfig().Scroll, cfg.Scroll)
}

func TestNewHost(t *testing.T) {
	host := NewHost(DefaultConfig())
	root := retained.NewNode("root")
	host.SetRoot(root)
	require.True(t, host.Layout(retained.Size{Width: 40, Height: 30}))
	assert.Equal(t, retained.Size{Width: 40, Height: 30}, root.ArrangedSize())
}
