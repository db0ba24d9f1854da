package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agiangrant/lattice/retained"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestInit(t *testing.T) {
	out := captureStdout(t)
	path := filepath.Join(t.TempDir(), "lattice.toml")

	require.NoError(t, Init([]string{"-config", path}))
	assert.Contains(t, out.String(), "Created")

	cfg, err := retained.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, retained.DefaultConfig(), cfg)

	err = Init([]string{"-config", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init([]string{"-config", path, "-force"}))
}

func TestInit_BadFlag(t *testing.T) {
	captureStdout(t)
	assert.Error(t, Init([]string{"-nope"}))
}

func TestDump(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	png := filepath.Join(dir, "layout.png")

	err := Dump([]string{
		"-config", filepath.Join(dir, "absent.toml"),
		"-out", png,
		"-width", "640", "-height", "480",
		"-scroll", "300",
	})
	require.NoError(t, err)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), "640x480")
	assert.Contains(t, out.String(), "of 500")
}

func TestDump_BadConfig(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lattice.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[scroll\n"), 0644))

	err := Dump([]string{"-config", cfg, "-out", filepath.Join(dir, "x.png")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestInspect(t *testing.T) {
	out := captureStdout(t)
	err := Inspect([]string{"-config", filepath.Join(t.TempDir(), "absent.toml"), "-depth", "2"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "scene "))
	assert.Contains(t, lines[0], "800.0 x 600.0")
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "  "), "depth 1 only: %q", l)
		assert.False(t, strings.HasPrefix(l, "    "), "depth 1 only: %q", l)
	}
}

func TestWriteTree(t *testing.T) {
	label := retained.NewText("hi").Node()
	root := retained.NewPanel(label).SetName("root").SetPadding(retained.Uniform(4))
	root.AddChild(retained.NewNode("gone").SetCollapsed(true))

	host := retained.NewHost(retained.DefaultConfig())
	host.SetRoot(root)
	host.Layout(retained.Size{Width: 100, Height: 50})

	var buf bytes.Buffer
	writeTree(&buf, root, 0)
	want := "root" + strings.Repeat(" ", nameColumn-4) + "     0.0     0.0   100.0 x 50.0\n" +
		`  text "hi"` + strings.Repeat(" ", nameColumn-11) + "     4.0     4.0    92.0 x 42.0\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	writeTree(&buf, nil, 0)
	assert.Empty(t, buf.String())
}
