package retained

import (
	"sync/atomic"
)

// NodeID uniquely identifies a node for the lifetime of the process.
type NodeID uint64

var nextNodeID atomic.Uint64

func newNodeID() NodeID {
	return NodeID(nextNodeID.Add(1))
}

// Layout arranges a node's children. Containers (grid, stack, lists) are
// Layout implementations attached to a Node.
//
// MeasureChildren receives the node's content-box available size (margin,
// padding and explicit size already applied) and returns the content size it
// wants. ArrangeChildren receives the final content-box size and must Arrange
// every child it measured, in the node's content coordinate space.
type Layout interface {
	MeasureChildren(n *Node, available Size, dontStretch bool) Size
	ArrangeChildren(n *Node, final Size)
}

// Leaf measures content that is not made of child nodes, such as text or an image.
type Leaf interface {
	MeasureContent(n *Node, available Size, dontStretch bool) Size
}

// ScrollableViewport is implemented by layouts that scroll their content.
// Children of such a node are arranged in content space; the coordinator's
// offset translates between content and viewport space.
type ScrollableViewport interface {
	Scroller() *ScrollCoordinator
}

// HitFilter lets a leaf refine hit testing inside its bounds, e.g. for
// non-rectangular content. local is relative to the node's border box.
type HitFilter interface {
	HitTestContent(n *Node, local Point) bool
}

// Node dirty bits.
const (
	dirtyMeasure uint8 = 1 << iota
	dirtyArrange
)

// nodeProps holds the box-model properties a template may set. Recycled
// nodes are reset to a snapshot of these.
type nodeProps struct {
	width     float32
	height    float32
	hasWidth  bool
	hasHeight bool
	minSize   Size
	maxSize   Size

	margin  Thickness
	padding Thickness

	hAlign Alignment
	vAlign Alignment

	collapsed      bool
	hitTestVisible bool

	cell GridCell
}

func defaultProps() nodeProps {
	return nodeProps{
		maxSize:        UnconstrainedSize,
		hitTestVisible: true,
		cell:           GridCell{RowSpan: 1, ColumnSpan: 1},
	}
}

// recyclable is implemented by leaves and layouts that hold template state
// of their own, outside the node's properties.
type recyclable interface {
	snapshotDefaults()
	resetToDefaults()
}

// Node is an element of the retained layout tree.
//
// A node measures and arranges itself through the two-pass protocol
// (Measure, then Arrange), delegating to its Layout when it has children
// or to its Leaf for intrinsic content. A node with neither overlays its
// children in the content box.
//
// Nodes are owned by the UI thread and are not safe for concurrent use.
type Node struct {
	id   NodeID
	name string

	parent   *Node
	children []*Node

	layout Layout
	leaf   Leaf

	props    nodeProps
	defaults *nodeProps

	data any

	wheel        WheelHandler
	wheelCapture WheelHandler

	// Layout results
	measured      bool
	arranged      bool
	measuredSize  Size // border box, excluding margin
	desiredSize   Size // measuredSize plus margin
	arrangedSize  Size
	position      Point // border-box origin in the parent's content space
	lastAvailable Size
	lastNoStretch bool
	lastFinal     Rect

	dirty uint8
}

// NewNode creates a detached node with default properties. It is dirty
// until first measured and arranged.
func NewNode(name string) *Node {
	return &Node{
		id:    newNodeID(),
		name:  name,
		props: defaultProps(),
		dirty: dirtyMeasure | dirtyArrange,
	}
}

// NewPanel creates a node that overlays its children.
func NewPanel(children ...*Node) *Node {
	n := NewNode("panel")
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Name returns the diagnostic name given at construction.
func (n *Node) Name() string { return n.name }

// SetName sets the diagnostic name.
func (n *Node) SetName(name string) *Node {
	n.name = name
	return n
}

// Layout returns the node's layout, or nil.
func (n *Node) Layout() Layout { return n.layout }

// SetLayout attaches a layout.
func (n *Node) SetLayout(l Layout) *Node {
	n.layout = l
	n.InvalidateMeasure()
	return n
}

// Leaf returns the node's leaf content, or nil.
func (n *Node) Leaf() Leaf { return n.leaf }

// SetLeaf attaches leaf content.
func (n *Node) SetLeaf(l Leaf) *Node {
	n.leaf = l
	n.InvalidateMeasure()
	return n
}

// Data returns the application value attached to the node.
func (n *Node) Data() any { return n.data }

// SetData attaches an application value. Recycling clears it.
func (n *Node) SetData(v any) *Node {
	n.data = v
	return n
}

// Scroller returns the scroll coordinator when the node is a scroll
// viewport, or nil.
func (n *Node) Scroller() *ScrollCoordinator {
	if sv, ok := n.layout.(ScrollableViewport); ok {
		return sv.Scroller()
	}
	return nil
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list. Callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// AddChild appends a child. The child must not already have a parent.
func (n *Node) AddChild(child *Node) *Node {
	return n.InsertChild(len(n.children), child)
}

// InsertChild inserts a child at index (clamped to the child count).
func (n *Node) InsertChild(index int, child *Node) *Node {
	if child.parent != nil {
		contractViolation("AddChild", child, "node already has a parent")
	}
	if child == n {
		contractViolation("AddChild", child, "node cannot be its own child")
	}

	child.parent = n
	if index < 0 {
		index = 0
	}
	if index >= len(n.children) {
		n.children = append(n.children, child)
	} else {
		n.children = append(n.children[:index+1], n.children[index:]...)
		n.children[index] = child
	}
	n.InvalidateMeasure()
	return n
}

// RemoveChild removes a child by reference.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.InvalidateMeasure()
			return true
		}
	}
	return false
}

// RemoveFromParent detaches the node from its parent.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ClearChildren detaches every child.
func (n *Node) ClearChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.InvalidateMeasure()
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Root returns the topmost ancestor, or n itself.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Depth returns the number of ancestors.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// ============================================================================
// Invalidation
// ============================================================================

// InvalidateMeasure marks the node and every ancestor as needing a new
// measure and arrange pass. The flag is always propagated to the root, so
// a clean node implies a clean subtree.
func (n *Node) InvalidateMeasure() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.dirty |= dirtyMeasure | dirtyArrange
	}
}

// InvalidateArrange marks the node and every ancestor as needing a new
// arrange pass.
func (n *Node) InvalidateArrange() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.dirty |= dirtyArrange
	}
}

// NeedsMeasure reports whether the node must be measured again.
func (n *Node) NeedsMeasure() bool { return n.dirty&dirtyMeasure != 0 }

// NeedsArrange reports whether the node must be arranged again.
func (n *Node) NeedsArrange() bool { return n.dirty&dirtyArrange != 0 }

// ============================================================================
// Box Model Properties
// ============================================================================

// SetWidth sets an explicit width.
func (n *Node) SetWidth(w float32) *Node {
	if !n.props.hasWidth || n.props.width != w {
		n.props.width, n.props.hasWidth = w, true
		n.InvalidateMeasure()
	}
	return n
}

// SetHeight sets an explicit height.
func (n *Node) SetHeight(h float32) *Node {
	if !n.props.hasHeight || n.props.height != h {
		n.props.height, n.props.hasHeight = h, true
		n.InvalidateMeasure()
	}
	return n
}

// SetSize sets an explicit width and height.
func (n *Node) SetSize(w, h float32) *Node {
	return n.SetWidth(w).SetHeight(h)
}

// ClearSize removes explicit sizes so the node sizes to its content.
func (n *Node) ClearSize() *Node {
	if n.props.hasWidth || n.props.hasHeight {
		n.props.hasWidth, n.props.hasHeight = false, false
		n.InvalidateMeasure()
	}
	return n
}

// ExplicitSize returns the explicit width and height and whether each is set.
func (n *Node) ExplicitSize() (w float32, hasW bool, h float32, hasH bool) {
	return n.props.width, n.props.hasWidth, n.props.height, n.props.hasHeight
}

// SetMinSize sets the minimum border-box size.
func (n *Node) SetMinSize(s Size) *Node {
	if n.props.minSize != s {
		n.props.minSize = s
		n.InvalidateMeasure()
	}
	return n
}

// MinSize returns the minimum border-box size.
func (n *Node) MinSize() Size { return n.props.minSize }

// MaxSize returns the maximum border-box size.
func (n *Node) MaxSize() Size { return n.props.maxSize }

// SetMaxSize sets the maximum border-box size.
func (n *Node) SetMaxSize(s Size) *Node {
	if n.props.maxSize != s {
		n.props.maxSize = s
		n.InvalidateMeasure()
	}
	return n
}

// SetMargin sets the outer spacing.
func (n *Node) SetMargin(t Thickness) *Node {
	if n.props.margin != t {
		n.props.margin = t
		n.InvalidateMeasure()
	}
	return n
}

// Margin returns the outer spacing.
func (n *Node) Margin() Thickness { return n.props.margin }

// SetPadding sets the inner spacing.
func (n *Node) SetPadding(t Thickness) *Node {
	if n.props.padding != t {
		n.props.padding = t
		n.InvalidateMeasure()
	}
	return n
}

// Padding returns the inner spacing.
func (n *Node) Padding() Thickness { return n.props.padding }

// SetAlignment sets the horizontal and vertical alignment within the slot.
func (n *Node) SetAlignment(h, v Alignment) *Node {
	if n.props.hAlign != h || n.props.vAlign != v {
		n.props.hAlign, n.props.vAlign = h, v
		n.InvalidateArrange()
	}
	return n
}

// HorizontalAlignment returns the horizontal alignment.
func (n *Node) HorizontalAlignment() Alignment { return n.props.hAlign }

// VerticalAlignment returns the vertical alignment.
func (n *Node) VerticalAlignment() Alignment { return n.props.vAlign }

// SetCollapsed removes the node from layout. A collapsed node measures to
// zero, takes no spacing in stacks, and is not hit-testable.
func (n *Node) SetCollapsed(collapsed bool) *Node {
	if n.props.collapsed != collapsed {
		n.props.collapsed = collapsed
		n.InvalidateMeasure()
	}
	return n
}

// Collapsed reports whether the node is collapsed.
func (n *Node) Collapsed() bool { return n.props.collapsed }

// SetHitTestVisible controls whether the node and its subtree take part in
// hit testing.
func (n *Node) SetHitTestVisible(v bool) *Node {
	n.props.hitTestVisible = v
	return n
}

// HitTestVisible reports whether the node takes part in hit testing.
func (n *Node) HitTestVisible() bool { return n.props.hitTestVisible }

// ============================================================================
// Recycling
// ============================================================================

// SnapshotDefaults records the current properties of n and its descendants
// as the state ResetToDefaults restores. Leaf and layout state (text
// metrics, image size, stack spacing, grid tracks) is recorded too. Item
// templates call this once, right after building a fresh node.
func (n *Node) SnapshotDefaults() {
	n.Walk(func(c *Node) bool {
		p := c.props
		c.defaults = &p
		if r, ok := c.leaf.(recyclable); ok {
			r.snapshotDefaults()
		}
		if r, ok := c.layout.(recyclable); ok {
			r.snapshotDefaults()
		}
		return true
	})
}

// ResetToDefaults restores the snapshot taken by SnapshotDefaults (or the
// construction defaults), clears attached data and marks the subtree for a
// fresh measure. Per-instance overrides applied while bound to a previous
// item do not survive.
func (n *Node) ResetToDefaults() {
	n.Walk(func(c *Node) bool {
		if c.defaults != nil {
			c.props = *c.defaults
		} else {
			c.props = defaultProps()
		}
		if r, ok := c.leaf.(recyclable); ok {
			r.resetToDefaults()
		}
		if r, ok := c.layout.(recyclable); ok {
			r.resetToDefaults()
		}
		c.data = nil
		c.measured = false
		c.arranged = false
		c.dirty = dirtyMeasure | dirtyArrange
		return true
	})
	n.InvalidateMeasure()
}
