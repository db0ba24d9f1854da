package retained

import (
	"github.com/agiangrant/lattice/virtual"
)

// ListView is a vertically scrolling, virtualized list.
//
// Only the items intersecting the viewport (plus trailing overscan) have
// nodes. Item extents come from, in order of preference: a per-item extent
// function, an explicit uniform extent, or the measured height of the first
// item built from the template.
type ListView struct {
	node     *Node
	cfg      Config
	source   Source
	realizer *Realizer
	scroller *ScrollCoordinator

	itemExtent     float32
	extentFunc     func(item any, index int) float32
	measuredExtent float32
	variable       *virtual.Variable
	template       ItemTemplate

	index     virtual.ExtentIndex
	window    virtual.Range
	viewport  float32
	measuring bool

	// Pending collection changes, applied at the next measure.
	stale       bool
	dirtyFrom   int
	clearNodes  bool
	unsubscribe func()
}

// NewListView creates a list over src. src may be nil and set later.
func NewListView(cfg Config, src Source, template ItemTemplate) *ListView {
	cfg = cfg.Validate()
	lv := &ListView{
		node:     NewNode("list"),
		cfg:      cfg,
		template: template,
		realizer: NewRealizer(template, cfg.Virtualization.PoolLimit),
		scroller: NewScrollCoordinator(cfg),
		window:   virtual.EmptyRange,
	}
	lv.node.layout = lv
	lv.scroller.OnChange(func(Point) {
		if !lv.measuring {
			lv.node.InvalidateMeasure()
		}
	})
	lv.SetSource(src)
	return lv
}

// Node returns the list's tree node.
func (lv *ListView) Node() *Node { return lv.node }

// Scroller returns the list's scroll coordinator.
func (lv *ListView) Scroller() *ScrollCoordinator { return lv.scroller }

// Source returns the item source.
func (lv *ListView) Source() Source { return lv.source }

// SetSource replaces the item source and subscribes to it when observable.
func (lv *ListView) SetSource(src Source) *ListView {
	if lv.unsubscribe != nil {
		lv.unsubscribe()
		lv.unsubscribe = nil
	}
	lv.source = src
	if obs, ok := src.(Observable); ok {
		lv.unsubscribe = obs.Subscribe(lv.onChange)
	}
	lv.markStale(0, true)
	return lv
}

// Close stops observing the source and releases every item node.
func (lv *ListView) Close() {
	if lv.unsubscribe != nil {
		lv.unsubscribe()
		lv.unsubscribe = nil
	}
	lv.realizer.Release(lv.node)
	lv.node.InvalidateMeasure()
}

// SetItemExtent sets a uniform item extent. Zero measures the template.
func (lv *ListView) SetItemExtent(v float32) *ListView {
	lv.itemExtent = v
	lv.markStale(0, false)
	return lv
}

// SetExtentFunc sets a per-item extent function, switching the list to
// variable extents. Nil returns to uniform extents.
func (lv *ListView) SetExtentFunc(fn func(item any, index int) float32) *ListView {
	lv.extentFunc = fn
	lv.variable = nil
	lv.markStale(0, false)
	return lv
}

// Refresh tells the list its source changed without notification.
func (lv *ListView) Refresh() {
	lv.markStale(0, true)
}

func (lv *ListView) onChange(e ChangeEvent) {
	switch e.Kind {
	case ChangeReplace:
		lv.realizer.Invalidate(e.Index)
		lv.markStale(e.Index, false)
	case ChangeReset:
		lv.markStale(0, true)
	default:
		lv.markStale(e.Index, true)
	}
}

func (lv *ListView) markStale(from int, clearNodes bool) {
	if !lv.stale || from < lv.dirtyFrom {
		lv.dirtyFrom = from
	}
	lv.stale = true
	lv.clearNodes = lv.clearNodes || clearNodes
	lv.node.InvalidateMeasure()
}

func (lv *ListView) count() int {
	if lv.source == nil {
		return 0
	}
	return lv.source.Len()
}

// ItemExtentIndex returns the extent index from the last layout pass.
func (lv *ListView) ItemExtentIndex() virtual.ExtentIndex { return lv.index }

// VisibleRange returns the realized index range from the last layout pass.
func (lv *ListView) VisibleRange() virtual.Range { return lv.window }

// RealizedCount returns the number of live item nodes.
func (lv *ListView) RealizedCount() int { return lv.realizer.Len() }

// Realizer exposes the list's node recycler.
func (lv *ListView) Realizer() *Realizer { return lv.realizer }

// ContainerFor returns the live node for index i, if realized.
func (lv *ListView) ContainerFor(i int) (*Node, bool) {
	return lv.realizer.Node(i)
}

// TotalExtent returns the summed extent of all items.
func (lv *ListView) TotalExtent() float32 {
	if lv.index == nil {
		return 0
	}
	return lv.index.Total()
}

// ScrollToIndex scrolls so item i starts at the top of the viewport (or as
// close as clamping allows).
func (lv *ListView) ScrollToIndex(i int, animated bool) {
	idx := lv.ensureIndex()
	if idx.Len() == 0 {
		return
	}
	i = clampIndex(i, idx.Len())
	if animated {
		lv.scroller.AnimateTo(0, idx.Offset(i))
		return
	}
	lv.scroller.ScrollTo(0, idx.Offset(i))
}

// BringIndexIntoView scrolls the minimum distance that shows item i.
func (lv *ListView) BringIndexIntoView(i int, animated bool) bool {
	idx := lv.ensureIndex()
	if idx.Len() == 0 {
		return false
	}
	i = clampIndex(i, idx.Len())
	return lv.scroller.ScrollIntoView(Rect{Y: idx.Offset(i), Height: idx.Extent(i)}, 0, animated)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (lv *ListView) ensureIndex() virtual.ExtentIndex {
	if lv.index == nil || lv.stale {
		width := lv.node.arrangedSize.Width
		if width <= 0 {
			width = Unconstrained
		}
		lv.index = lv.buildIndex(width)
		// The scroller must know the new extent before a programmatic scroll.
		lv.scroller.SetExtents(Size{Height: lv.index.Total()}, lv.scroller.ViewportSize())
	}
	return lv.index
}

// buildIndex applies pending changes and returns the current extent index.
func (lv *ListView) buildIndex(width float32) virtual.ExtentIndex {
	n := lv.count()
	stale := lv.stale
	lv.stale = false

	if lv.extentFunc != nil {
		if lv.variable == nil {
			lv.variable = virtual.NewVariable(n, func(i int) float32 {
				return lv.extentFunc(lv.source.At(i), i)
			})
		} else if stale {
			lv.variable.SetLen(n)
			lv.variable.Invalidate(lv.dirtyFrom)
		}
		return lv.variable
	}

	extent := lv.itemExtent
	if extent <= 0 {
		if lv.measuredExtent <= 0 || (stale && lv.dirtyFrom == 0) {
			lv.measuredExtent = lv.probeExtent(width)
		}
		extent = lv.measuredExtent
	}
	if extent <= 0 {
		extent = lv.cfg.Virtualization.DefaultItemExtent
	}
	return virtual.Uniform{Count: n, ItemExtent: extent}
}

// probeExtent measures the first item built from the template.
func (lv *ListView) probeExtent(width float32) float32 {
	if lv.count() == 0 {
		return 0
	}
	item := lv.source.At(0)

	var probe *Node
	switch {
	case lv.template.Build != nil:
		probe = lv.template.Build(item, 0)
	case lv.template.New != nil:
		probe = lv.template.New()
		probe.SnapshotDefaults()
		if lv.template.Bind != nil {
			lv.template.Bind(probe, item, 0)
		}
		defer lv.realizer.pool.put(probe)
	default:
		return 0
	}

	d := probe.Measure(Size{Width: width, Height: Unconstrained}, true)
	debugLog("[list] %s#%d probed item extent %.1f", lv.node.name, lv.node.id, d.Height)
	return d.Height
}

// realize computes the window for viewport and realizes its items.
func (lv *ListView) realize(n *Node, width, viewport float32) float32 {
	if lv.clearNodes {
		lv.realizer.Clear(n)
		lv.clearNodes = false
	}
	idx := lv.buildIndex(width)
	lv.index = idx
	lv.viewport = viewport

	lv.scroller.SetExtents(Size{Height: idx.Total()}, Size{Width: width, Height: viewport})
	lv.window = virtual.Window{
		Offset:   lv.scroller.Offset().Y,
		Viewport: viewport,
		Overscan: lv.cfg.Virtualization.Overscan,
	}.Compute(idx)

	window := lv.window
	lv.realizer.Retain(func(key any) bool { return window.Contains(key.(int)) })

	var widest float32
	lv.realizer.Begin()
	for i := lv.window.First; i <= lv.window.Last; i++ {
		c := lv.realizer.Realize(i, lv.source.At(i), i)
		if c == nil {
			continue
		}
		d := c.Measure(Size{Width: width, Height: idx.Extent(i)}, true)
		widest = maxf(widest, d.Width)
	}
	lv.realizer.End(n)

	debugLog("[list] %s#%d window=[%d,%d] realized=%d pool=%d",
		n.name, n.id, lv.window.First, lv.window.Last, lv.realizer.Len(), lv.realizer.PoolLen())
	return widest
}

func (lv *ListView) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	lv.measuring = true
	defer func() { lv.measuring = false }()

	viewport := available.Height
	if IsUnconstrained(viewport) {
		viewport = minf(lv.ensureIndex().Total(), lv.cfg.Virtualization.MaxUnconstrainedViewport)
	}
	widest := lv.realize(n, available.Width, viewport)
	return Size{Width: widest, Height: viewport}
}

func (lv *ListView) ArrangeChildren(n *Node, final Size) {
	lv.measuring = true
	defer func() { lv.measuring = false }()

	if final.Height != lv.viewport || lv.stale {
		lv.realize(n, final.Width, final.Height)
	}
	lv.scroller.SetExtents(Size{Width: final.Width, Height: lv.index.Total()}, final)

	for i := lv.window.First; i <= lv.window.Last; i++ {
		c, ok := lv.realizer.Node(i)
		if !ok {
			continue
		}
		c.Arrange(Rect{Y: lv.index.Offset(i), Width: final.Width, Height: lv.index.Extent(i)})
	}
}
