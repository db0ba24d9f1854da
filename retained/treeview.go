package retained

import (
	"github.com/agiangrant/lattice/virtual"
)

// TreeTemplate builds row nodes for a TreeView. Bind receives the flattener
// node, so it can show depth, expansion state and whether a row has children.
type TreeTemplate struct {
	New  func() *Node
	Bind func(n *Node, row *virtual.TreeRowNode)
}

// TreeView is a virtualized, lazily expanded hierarchy.
//
// Rows are the visible nodes of a virtual.Tree, windowed against the scroll
// offset using the flattener's cached subtree heights. Each row is indented
// by its depth.
type TreeView struct {
	node     *Node
	cfg      Config
	tree     *virtual.Tree
	realizer *Realizer
	scroller *ScrollCoordinator
	indent   float32

	rows      []virtual.Row
	viewport  float32
	measuring bool
}

// NewTreeView creates an empty tree view.
func NewTreeView(cfg Config, template TreeTemplate) *TreeView {
	cfg = cfg.Validate()
	tv := &TreeView{
		node:     NewNode("tree"),
		cfg:      cfg,
		tree:     virtual.NewTree(cfg.Tree.RowExtent),
		scroller: NewScrollCoordinator(cfg),
		indent:   cfg.Tree.Indent,
	}
	tv.node.layout = tv

	item := ItemTemplate{New: template.New}
	if template.Bind != nil {
		item.Bind = func(n *Node, v any, _ int) {
			template.Bind(n, v.(*virtual.TreeRowNode))
		}
	}
	tv.realizer = NewRealizer(item, cfg.Virtualization.PoolLimit)

	tv.scroller.OnChange(func(Point) {
		if !tv.measuring {
			tv.node.InvalidateMeasure()
		}
	})
	return tv
}

// Node returns the tree view's node.
func (tv *TreeView) Node() *Node { return tv.node }

// Tree returns the flattener, for registering selectors and key functions.
func (tv *TreeView) Tree() *virtual.Tree { return tv.tree }

// Scroller returns the tree view's scroll coordinator.
func (tv *TreeView) Scroller() *ScrollCoordinator { return tv.scroller }

// SetRoots replaces the top-level items.
func (tv *TreeView) SetRoots(items ...any) {
	tv.tree.SetRoots(items)
	tv.realizer.Clear(tv.node)
	tv.node.InvalidateMeasure()
}

// VisibleRows returns the rows realized by the last layout pass.
func (tv *TreeView) VisibleRows() []virtual.Row { return tv.rows }

// RowNode returns the live node for a flattener row, if realized.
func (tv *TreeView) RowNode(row *virtual.TreeRowNode) (*Node, bool) {
	return tv.realizer.Node(row)
}

// changed rebinds the toggled row (its expander state changed) and
// schedules a new layout pass.
func (tv *TreeView) changed(item any, ok bool) bool {
	if !ok {
		return false
	}
	if n, found := tv.tree.Node(item); found {
		tv.realizer.Invalidate(n)
	}
	debugLog("[tree] %s#%d toggled, total=%.1f", tv.node.name, tv.node.id, tv.tree.TotalExtent())
	tv.node.InvalidateMeasure()
	return true
}

// Expand expands item.
func (tv *TreeView) Expand(item any) bool {
	return tv.changed(item, tv.tree.Expand(item))
}

// Collapse collapses item.
func (tv *TreeView) Collapse(item any) bool {
	return tv.changed(item, tv.tree.Collapse(item))
}

// Toggle flips item's expansion state.
func (tv *TreeView) Toggle(item any) bool {
	return tv.changed(item, tv.tree.Toggle(item))
}

// ExpandAll expands the whole hierarchy.
func (tv *TreeView) ExpandAll() {
	tv.tree.ExpandAll()
	tv.realizer.Clear(tv.node)
	tv.node.InvalidateMeasure()
}

// CollapseAll collapses every node.
func (tv *TreeView) CollapseAll() {
	tv.tree.CollapseAll()
	tv.realizer.Clear(tv.node)
	tv.node.InvalidateMeasure()
}

// ExpandToLevel shows rows down to the given level.
func (tv *TreeView) ExpandToLevel(level int) {
	tv.tree.ExpandToLevel(level)
	tv.realizer.Clear(tv.node)
	tv.node.InvalidateMeasure()
}

// Refresh rediscovers item's children after its collection changed.
func (tv *TreeView) Refresh(item any) {
	tv.tree.Refresh(item)
	tv.realizer.Clear(tv.node)
	tv.node.InvalidateMeasure()
}

// RowAt returns the row at a point in the tree view's viewport space.
func (tv *TreeView) RowAt(p Point) (*virtual.TreeRowNode, bool) {
	content := tv.scroller.ToContent(p)
	rows := tv.tree.VisibleRows(content.Y, 1)
	if len(rows) == 0 {
		return nil, false
	}
	return rows[0].Node, true
}

// ToggleAt toggles the row under p, given in the tree view's viewport space.
func (tv *TreeView) ToggleAt(p Point) bool {
	row, ok := tv.RowAt(p)
	if !ok {
		return false
	}
	return tv.Toggle(row.Item)
}

// ScrollIntoView scrolls so item's row is visible. Hidden items (under a
// collapsed ancestor) are not revealed.
func (tv *TreeView) ScrollIntoView(item any, animated bool) bool {
	off, ok := tv.tree.OffsetOf(item)
	if !ok {
		return false
	}
	n, _ := tv.tree.Node(item)
	tv.scroller.SetExtents(Size{Height: tv.tree.TotalExtent()}, tv.scroller.ViewportSize())
	return tv.scroller.ScrollIntoView(Rect{Y: off, Height: n.OwnHeight()}, 0, animated)
}

func (tv *TreeView) realize(n *Node, width, viewport float32) float32 {
	tv.viewport = viewport
	tv.scroller.SetExtents(Size{Height: tv.tree.TotalExtent()}, Size{Width: width, Height: viewport})

	// Trailing overscan, as for lists.
	slack := float32(tv.cfg.Virtualization.Overscan) * tv.cfg.Tree.RowExtent
	tv.rows = tv.tree.VisibleRows(tv.scroller.Offset().Y, viewport+slack)

	visible := make(map[any]bool, len(tv.rows))
	for _, r := range tv.rows {
		visible[r.Node] = true
	}
	tv.realizer.Retain(func(key any) bool { return visible[key] })

	var widest float32
	tv.realizer.Begin()
	for _, r := range tv.rows {
		// Row nodes are bound once per flattener node; expansion changes
		// rebind through Invalidate.
		c := tv.realizer.Realize(r.Node, r.Node, 0)
		if c == nil {
			continue
		}
		inset := float32(r.Node.Depth) * tv.indent
		avail := Size{Width: width, Height: r.Node.OwnHeight()}
		if !IsUnconstrained(width) {
			avail.Width = maxf(0, width-inset)
		}
		d := c.Measure(avail, true)
		widest = maxf(widest, d.Width+inset)
	}
	tv.realizer.End(n)

	debugLog("[tree] %s#%d rows=%d realized=%d", n.name, n.id, len(tv.rows), tv.realizer.Len())
	return widest
}

func (tv *TreeView) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	tv.measuring = true
	defer func() { tv.measuring = false }()

	viewport := available.Height
	if IsUnconstrained(viewport) {
		viewport = minf(tv.tree.TotalExtent(), tv.cfg.Virtualization.MaxUnconstrainedViewport)
	}
	widest := tv.realize(n, available.Width, viewport)
	return Size{Width: widest, Height: viewport}
}

func (tv *TreeView) ArrangeChildren(n *Node, final Size) {
	tv.measuring = true
	defer func() { tv.measuring = false }()

	if final.Height != tv.viewport {
		tv.realize(n, final.Width, final.Height)
	}
	tv.scroller.SetExtents(Size{Width: final.Width, Height: tv.tree.TotalExtent()}, final)

	for _, r := range tv.rows {
		c, ok := tv.realizer.Node(r.Node)
		if !ok {
			continue
		}
		inset := float32(r.Node.Depth) * tv.indent
		c.Arrange(Rect{X: inset, Y: r.Offset, Width: maxf(0, final.Width-inset), Height: r.Node.OwnHeight()})
	}
}
