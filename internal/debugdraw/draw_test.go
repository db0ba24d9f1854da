package debugdraw

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/agiangrant/lattice/retained"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isBackground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

// scrolledList lays out a 100-row list inside a panel with 20px padding and
// scrolls it by 10px so the first row straddles the viewport edge.
func scrolledList(t *testing.T) *retained.Node {
	t.Helper()
	rows := make(retained.SliceSource[int], 100)
	lv := retained.NewListView(retained.DefaultConfig(), rows, retained.ItemTemplate{
		New: func() *retained.Node { return retained.NewNode("row") },
	}).SetItemExtent(30)

	root := retained.NewPanel(lv.Node()).SetPadding(retained.Uniform(20))
	host := retained.NewHost(retained.DefaultConfig())
	host.SetRoot(root)
	size := retained.Size{Width: 240, Height: 140}
	host.Layout(size)

	lv.Scroller().ScrollTo(0, 10)
	host.Layout(size)
	return root
}

func TestRender_ClipsToScrollViewport(t *testing.T) {
	root := scrolledList(t)
	opts := DefaultOptions()
	opts.Labels = false

	img := Render(root, 240, 140, opts)
	require.Equal(t, 240, img.Bounds().Dx())

	assert.False(t, isBackground(img.At(0, 70)), "root outline")
	assert.False(t, isBackground(img.At(100, 20)), "list outline")
	assert.True(t, isBackground(img.At(100, 10)), "row 0 starts above the viewport and is clipped")
	assert.False(t, isBackground(img.At(100, 40)), "row 1 top edge")
	assert.True(t, isBackground(img.At(100, 130)), "rows below the viewport are clipped")
}

func TestRender_NilRoot(t *testing.T) {
	img := Render(nil, 10, 10, Options{})
	assert.True(t, isBackground(img.At(5, 5)))
}

func TestRender_CollapsedNodesAreSkipped(t *testing.T) {
	hidden := retained.NewNode("hidden").SetSize(40, 40).SetCollapsed(true)
	root := retained.NewPanel(hidden)
	host := retained.NewHost(retained.DefaultConfig())
	host.SetRoot(root)
	host.Layout(retained.Size{Width: 100, Height: 100})

	opts := DefaultOptions()
	opts.Labels = false
	img := Render(root, 100, 100, opts)
	assert.True(t, isBackground(img.At(20, 39)))
}

func TestSavePNG(t *testing.T) {
	root := scrolledList(t)
	path := filepath.Join(t.TempDir(), "layout.png")

	require.NoError(t, SavePNG(path, root, 240, 140, DefaultOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 140, img.Bounds().Dy())
}

func TestSavePNG_BadPath(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), nil, 4, 4, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}
