package retained

import (
	"testing"

	"github.com/agiangrant/lattice/virtual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowTemplate() ItemTemplate {
	return ItemTemplate{
		New: func() *Node { return NewNode("row") },
		Bind: func(n *Node, item any, index int) {
			n.SetData(item)
		},
	}
}

func intItems(n int) SliceSource[int] {
	items := make(SliceSource[int], n)
	for i := range items {
		items[i] = i
	}
	return items
}

func newTestList(t *testing.T, count int, extent, viewport float32) (*ListView, *Host) {
	t.Helper()
	lv := NewListView(DefaultConfig(), intItems(count), rowTemplate())
	lv.SetItemExtent(extent)
	host := layoutRoot(t, lv.Node(), 200, viewport)
	return lv, host
}

func TestList_RealizesOnlyTheWindow(t *testing.T) {
	lv, _ := newTestList(t, 1000, 30, 300)

	assert.Equal(t, virtual.Range{First: 0, Last: 10}, lv.VisibleRange())
	assert.LessOrEqual(t, lv.RealizedCount(), 12)
	assert.Equal(t, 11, lv.Node().ChildCount())
	assert.InDelta(t, 30000, lv.TotalExtent(), eps)

	n, ok := lv.ContainerFor(5)
	require.True(t, ok)
	assert.Equal(t, Rect{Y: 150, Width: 200, Height: 30}, n.Bounds())
	assert.Equal(t, 5, n.Data())

	_, ok = lv.ContainerFor(11)
	assert.False(t, ok)
}

func TestList_ScrollRewindowsAndRecycles(t *testing.T) {
	lv, host := newTestList(t, 1000, 30, 300)

	lv.Scroller().ScrollTo(0, 3000)
	require.True(t, host.NeedsLayout(), "scrolling invalidates the list")
	host.Layout(Size{Width: 200, Height: 300})

	assert.Equal(t, virtual.Range{First: 100, Last: 110}, lv.VisibleRange())
	assert.Equal(t, 11, lv.RealizedCount())
	assert.Equal(t, 11, lv.Realizer().Created(), "nodes leaving the window are reused")

	n, ok := lv.ContainerFor(105)
	require.True(t, ok)
	assert.Equal(t, 105, n.Data())
	assert.Equal(t, float32(3150), n.Bounds().Y)
	assert.Equal(t, float32(150), n.AbsoluteBounds().Y)
	assert.Same(t, n, host.HitTest(Point{X: 10, Y: 155}))
}

func TestList_ScrollClampsToContent(t *testing.T) {
	lv, host := newTestList(t, 1000, 30, 300)
	lv.Scroller().ScrollTo(0, 1e6)
	host.Layout(Size{Width: 200, Height: 300})

	assert.Equal(t, float32(29700), lv.Scroller().Offset().Y)
	assert.Equal(t, 999, lv.VisibleRange().Last)
}

func TestList_SmallScrollKeepsNodes(t *testing.T) {
	lv, host := newTestList(t, 1000, 30, 300)
	before, _ := lv.ContainerFor(3)

	lv.Scroller().ScrollBy(0, 10)
	host.Layout(Size{Width: 200, Height: 300})

	after, _ := lv.ContainerFor(3)
	assert.Same(t, before, after)
	assert.Equal(t, float32(90), after.Bounds().Y)
}

func TestList_TemplateMeasuredExtent(t *testing.T) {
	lv := NewListView(DefaultConfig(), intItems(50), ItemTemplate{
		New: func() *Node { return NewNode("row").SetHeight(40) },
	})
	layoutRoot(t, lv.Node(), 200, 200)

	assert.InDelta(t, 2000, lv.TotalExtent(), eps)
	assert.Equal(t, virtual.Range{First: 0, Last: 5}, lv.VisibleRange())
}

func TestList_DefaultExtentWhenTemplateIsEmpty(t *testing.T) {
	lv := NewListView(DefaultConfig(), intItems(10), TemplateFunc(func(item any, index int) *Node {
		return NewNode("flat")
	}))
	layoutRoot(t, lv.Node(), 200, 100)

	assert.InDelta(t, 240, lv.TotalExtent(), eps)
}

func TestList_VariableExtents(t *testing.T) {
	lv := NewListView(DefaultConfig(), intItems(100), rowTemplate())
	lv.SetExtentFunc(func(item any, index int) float32 {
		if index%2 == 0 {
			return 10
		}
		return 30
	})
	layoutRoot(t, lv.Node(), 200, 300)

	assert.InDelta(t, 2000, lv.TotalExtent(), eps)
	assert.Equal(t, virtual.Range{First: 0, Last: 16}, lv.VisibleRange())

	n, _ := lv.ContainerFor(15)
	assert.Equal(t, Rect{Y: 290, Width: 200, Height: 30}, n.Bounds())
}

func TestList_ObservableCollection(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}
	col := NewCollection(items...)
	lv := NewListView(DefaultConfig(), col, rowTemplate()).SetItemExtent(30)
	host := layoutRoot(t, lv.Node(), 200, 300)

	col.Append(50, 51)
	require.True(t, host.NeedsLayout())
	host.Layout(Size{Width: 200, Height: 300})
	assert.InDelta(t, 52*30, lv.TotalExtent(), eps)

	col.Set(0, 999)
	host.Layout(Size{Width: 200, Height: 300})
	n, _ := lv.ContainerFor(0)
	assert.Equal(t, 999, n.Data())

	col.RemoveAt(0)
	host.Layout(Size{Width: 200, Height: 300})
	n, _ = lv.ContainerFor(0)
	assert.Equal(t, 1, n.Data())
	assert.InDelta(t, 51*30, lv.TotalExtent(), eps)

	col.Reset(nil)
	host.Layout(Size{Width: 200, Height: 300})
	assert.Zero(t, lv.RealizedCount())
	assert.True(t, lv.VisibleRange().Empty())

	lv.Close()
	host.Layout(Size{Width: 200, Height: 300})
	col.Append(1)
	assert.False(t, host.NeedsLayout(), "closed lists stop observing")
}

func TestList_UnconstrainedViewportIsClamped(t *testing.T) {
	cfg := DefaultConfig()
	long := NewListView(cfg, intItems(1000), rowTemplate()).SetItemExtent(30)
	short := NewListView(cfg, intItems(5), rowTemplate()).SetItemExtent(30)

	d := long.Node().Measure(Size{Width: 200, Height: Unconstrained}, true)
	assert.Equal(t, cfg.Virtualization.MaxUnconstrainedViewport, d.Height)
	assert.LessOrEqual(t, long.RealizedCount(), int(cfg.Virtualization.MaxUnconstrainedViewport/30)+2)

	d = short.Node().Measure(Size{Width: 200, Height: Unconstrained}, true)
	assert.Equal(t, float32(150), d.Height)
}

func TestList_ScrollToIndex(t *testing.T) {
	lv, host := newTestList(t, 1000, 30, 300)

	lv.ScrollToIndex(50, false)
	assert.Equal(t, float32(1500), lv.Scroller().Offset().Y)

	lv.ScrollToIndex(5000, false)
	assert.Equal(t, float32(29700), lv.Scroller().Offset().Y)

	lv.ScrollToIndex(0, true)
	for host.Tick(0.05) {
	}
	assert.InDelta(t, 0, lv.Scroller().Offset().Y, eps)

	assert.True(t, lv.BringIndexIntoView(20, false))
	assert.Equal(t, float32(330), lv.Scroller().Offset().Y)
	assert.False(t, lv.BringIndexIntoView(15, false))
}

func TestList_EmptySource(t *testing.T) {
	lv := NewListView(DefaultConfig(), nil, rowTemplate())
	layoutRoot(t, lv.Node(), 200, 300)
	assert.Zero(t, lv.RealizedCount())
	assert.True(t, lv.VisibleRange().Empty())
	assert.False(t, lv.BringIndexIntoView(3, false))
}
