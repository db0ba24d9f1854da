package retained

import (
	"testing"

	"github.com/agiangrant/lattice/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutRoot(t *testing.T, root *Node, w, h float32) *Host {
	t.Helper()
	host := NewHost(DefaultConfig())
	host.SetRoot(root)
	require.True(t, host.Layout(Size{Width: w, Height: h}))
	return host
}

func TestGrid_StarProportional(t *testing.T) {
	g := NewGrid([]track.Track{track.Px(30), track.Stars(1), track.Stars(2)}, nil)
	cells := []*Node{NewNode("a"), NewNode("b"), NewNode("c")}
	for i, c := range cells {
		g.Add(c, 0, i)
	}
	layoutRoot(t, g.Node(), 160, 50)

	expect := []struct{ x, w float32 }{{0, 30}, {30, 43.33}, {73.33, 86.67}}
	for i, e := range expect {
		b := cells[i].Bounds()
		assert.InDelta(t, e.x, b.X, eps, "cell %d x", i)
		assert.InDelta(t, e.w, b.Width, eps, "cell %d width", i)
		assert.InDelta(t, 50, b.Height, eps)
	}
}

func TestGrid_AutoColumnFromContent(t *testing.T) {
	g := NewGrid([]track.Track{track.Auto(), track.Star()}, []track.Track{track.Auto(), track.Star()})
	label := NewNode("label").SetSize(40, 12)
	body := NewNode("body")
	g.Add(label, 0, 0)
	g.Add(body, 1, 1)
	layoutRoot(t, g.Node(), 200, 100)

	assert.InDelta(t, 40, g.ColumnResult().Extent(0), eps)
	assert.InDelta(t, 160, g.ColumnResult().Extent(1), eps)
	assert.InDelta(t, 12, g.RowResult().Extent(0), eps)
	assert.Equal(t, Rect{X: 40, Y: 12, Width: 160, Height: 88}, body.Bounds())
}

func TestGrid_SpanCoversTracks(t *testing.T) {
	g := NewGrid([]track.Track{track.Px(50), track.Px(50)}, []track.Track{track.Px(20), track.Px(20)})
	wide := NewNode("wide")
	g.AddSpan(wide, 1, 0, 1, 2)
	layoutRoot(t, g.Node(), 100, 40)

	assert.Equal(t, Rect{X: 0, Y: 20, Width: 100, Height: 20}, wide.Bounds())
}

func TestGrid_SpanningAutoContribution(t *testing.T) {
	g := NewGrid([]track.Track{track.Auto(), track.Auto()}, nil)
	a := NewNode("a").SetSize(10, 10)
	wide := NewNode("wide").SetSize(70, 10)
	g.Add(a, 0, 0)
	g.AddSpan(wide, 0, 0, 1, 2)
	layoutRoot(t, g.Node(), 300, 10)

	// 70 spans both; the excess over 10 is split equally over the auto tracks.
	cols := g.ColumnResult()
	assert.InDelta(t, 70, cols.Extent(0)+cols.Extent(1), eps)
	assert.InDelta(t, 70, wide.Bounds().Width, eps)
}

func TestGrid_OutOfRangeIndicesClamp(t *testing.T) {
	g := NewGrid([]track.Track{track.Px(50), track.Px(50)}, nil)
	stray := NewNode("stray")
	g.Add(stray, 5, 7)
	layoutRoot(t, g.Node(), 100, 30)

	assert.Equal(t, Rect{X: 50, Y: 0, Width: 50, Height: 30}, stray.Bounds())
}

func TestGrid_NoTracksIsSingleStar(t *testing.T) {
	g := NewGrid(nil, nil)
	child := NewNode("child")
	g.Add(child, 0, 0)
	layoutRoot(t, g.Node(), 120, 80)

	assert.Equal(t, Rect{Width: 120, Height: 80}, child.Bounds())
}

func TestGrid_OverlappingCellsBothArrange(t *testing.T) {
	g := NewGrid([]track.Track{track.Px(50), track.Px(50)}, nil)
	under := NewNode("under")
	over := NewNode("over").SetWidth(20)
	g.AddSpan(under, 0, 0, 1, 2)
	g.Add(over, 0, 1)
	host := layoutRoot(t, g.Node(), 100, 30)

	assert.Equal(t, float32(100), under.Bounds().Width)
	assert.Equal(t, float32(20), over.Bounds().Width)
	assert.Same(t, over, host.HitTest(Point{X: 55, Y: 5}))
	assert.Same(t, under, host.HitTest(Point{X: 80, Y: 5}))
}

func TestGrid_BoundTrackReadEachPass(t *testing.T) {
	width := float32(20)
	g := NewGrid([]track.Track{track.Bind(func() float32 { return width }), track.Star()}, nil)
	pane := NewNode("pane")
	rest := NewNode("rest")
	g.Add(pane, 0, 0)
	g.Add(rest, 0, 1)
	host := layoutRoot(t, g.Node(), 100, 10)
	assert.InDelta(t, 20, pane.Bounds().Width, eps)

	width = 60
	g.InvalidateTracks()
	require.True(t, host.NeedsLayout())
	host.Layout(Size{Width: 100, Height: 10})
	assert.InDelta(t, 60, pane.Bounds().Width, eps)
	assert.InDelta(t, 60, rest.Bounds().X, eps)
	assert.InDelta(t, 40, rest.Bounds().Width, eps)
}

func TestGrid_Spacing(t *testing.T) {
	g := NewGrid([]track.Track{track.Star(), track.Star()}, nil).SetSpacing(10, 0)
	a, b := NewNode("a"), NewNode("b")
	g.Add(a, 0, 0)
	g.Add(b, 0, 1)
	layoutRoot(t, g.Node(), 110, 10)

	assert.InDelta(t, 50, a.Bounds().Width, eps)
	assert.InDelta(t, 60, b.Bounds().X, eps)
}
