package virtual

import (
	"fmt"
	"reflect"
)

// Selector returns the children of a data item. It is called lazily, the
// first time the item's node is expanded (or by Refresh).
type Selector func(item any) []any

// TreeRowNode is the flattener's record for one data item.
//
// Nodes are created when their parent is first expanded and are kept across
// collapse, so re-expanding restores the previous expansion state of the
// whole subtree without calling selectors again.
type TreeRowNode struct {
	Item     any
	Depth    int
	Expanded bool
	Parent   *TreeRowNode

	children   []*TreeRowNode
	discovered bool

	ownHeight    float32
	cachedHeight float32
}

// Children returns the discovered children. Nil until first expansion.
func (n *TreeRowNode) Children() []*TreeRowNode { return n.children }

// Discovered reports whether the children selector has been run.
func (n *TreeRowNode) Discovered() bool { return n.discovered }

// OwnHeight is the extent of this row alone.
func (n *TreeRowNode) OwnHeight() float32 { return n.ownHeight }

// CachedHeight is the extent of this row plus all visible descendants.
func (n *TreeRowNode) CachedHeight() float32 { return n.cachedHeight }

// Row is a visible tree row with its offset from the top of the content.
type Row struct {
	Node   *TreeRowNode
	Offset float32
}

// Tree flattens a hierarchy of heterogeneous items into visible rows.
//
// Children are discovered through selectors registered per concrete item
// type. Every item maps to exactly one TreeRowNode for the tree's lifetime
// (keyed by KeyFunc), so a refreshed child collection containing the same
// items reuses the existing nodes with their expansion state.
type Tree struct {
	roots     []*TreeRowNode
	nodes     map[any]*TreeRowNode
	selectors map[reflect.Type]Selector

	key       func(item any) any
	rowExtent func(item any) float32
	extent    float32
}

// NewTree creates an empty tree whose rows are rowExtent tall unless a
// per-item extent function is set.
func NewTree(rowExtent float32) *Tree {
	if rowExtent < 0 {
		rowExtent = 0
	}
	return &Tree{
		nodes:     make(map[any]*TreeRowNode),
		selectors: make(map[reflect.Type]Selector),
		extent:    rowExtent,
	}
}

// SetKeyFunc sets the identity function used to map items to nodes. The
// returned key must be comparable. By default the item itself is the key.
func (t *Tree) SetKeyFunc(fn func(item any) any) {
	t.key = fn
}

// SetRowExtentFunc sets a per-item row extent. Existing nodes keep their
// heights until Refresh or InvalidateHeight is called for them.
func (t *Tree) SetRowExtentFunc(fn func(item any) float32) {
	t.rowExtent = fn
}

// Register associates a children selector with the concrete type of sample.
func (t *Tree) Register(sample any, sel Selector) {
	t.selectors[reflect.TypeOf(sample)] = sel
}

// RegisterType associates a typed children selector with T.
func RegisterType[T any](t *Tree, sel func(T) []any) {
	t.selectors[reflect.TypeFor[T]()] = func(item any) []any {
		return sel(item.(T))
	}
}

func (t *Tree) keyOf(item any) any {
	k := item
	if t.key != nil {
		k = t.key(item)
	}
	if k != nil && !reflect.TypeOf(k).Comparable() {
		panic(fmt.Sprintf("virtual: tree key of type %T is not comparable", k))
	}
	return k
}

func (t *Tree) heightOf(item any) float32 {
	h := t.extent
	if t.rowExtent != nil {
		h = t.rowExtent(item)
	}
	if h < 0 {
		h = 0
	}
	return h
}

// nodeFor returns the node for item, creating it if needed, and attaches it
// at the given parent and depth.
func (t *Tree) nodeFor(item any, parent *TreeRowNode, depth int) *TreeRowNode {
	k := t.keyOf(item)
	n, ok := t.nodes[k]
	if !ok {
		n = &TreeRowNode{Item: item, ownHeight: t.heightOf(item)}
		n.cachedHeight = n.ownHeight
		t.nodes[k] = n
	}
	n.Item = item
	n.Parent = parent
	if n.Depth != depth {
		setDepth(n, depth)
	}
	return n
}

func setDepth(n *TreeRowNode, depth int) {
	n.Depth = depth
	for _, c := range n.children {
		setDepth(c, depth+1)
	}
}

// forget removes n and its descendants from the identity map.
func (t *Tree) forget(n *TreeRowNode) {
	delete(t.nodes, t.keyOf(n.Item))
	for _, c := range n.children {
		t.forget(c)
	}
}

// SetRoots replaces the top-level items. Items already known keep their nodes.
func (t *Tree) SetRoots(items []any) {
	roots := make([]*TreeRowNode, 0, len(items))
	keep := make(map[*TreeRowNode]bool, len(items))
	for _, item := range items {
		n := t.nodeFor(item, nil, 0)
		roots = append(roots, n)
		keep[n] = true
	}
	for _, old := range t.roots {
		if !keep[old] {
			t.forget(old)
		}
	}
	t.roots = roots
}

// Roots returns the top-level nodes.
func (t *Tree) Roots() []*TreeRowNode { return t.roots }

// Node returns the node for item, if the item has been discovered.
func (t *Tree) Node(item any) (*TreeRowNode, bool) {
	n, ok := t.nodes[t.keyOf(item)]
	return n, ok
}

// Len returns the number of discovered nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// HasChildren reports whether n has (or would have) children when expanded.
func (t *Tree) HasChildren(n *TreeRowNode) bool {
	if n.discovered {
		return len(n.children) > 0
	}
	sel, ok := t.selectors[reflect.TypeOf(n.Item)]
	return ok && len(sel(n.Item)) > 0
}

func (t *Tree) discover(n *TreeRowNode) {
	if n.discovered {
		return
	}
	n.discovered = true
	sel, ok := t.selectors[reflect.TypeOf(n.Item)]
	if !ok {
		return
	}
	items := sel(n.Item)
	n.children = make([]*TreeRowNode, 0, len(items))
	for _, item := range items {
		n.children = append(n.children, t.nodeFor(item, n, n.Depth+1))
	}
}

func (t *Tree) recompute(n *TreeRowNode) {
	h := n.ownHeight
	if n.Expanded {
		for _, c := range n.children {
			h += c.cachedHeight
		}
	}
	n.cachedHeight = h
}

// propagate recomputes n and walks up the parent chain while heights change.
// A collapsed ancestor's height does not depend on its children, so the walk
// stops there.
func (t *Tree) propagate(n *TreeRowNode) {
	for cur := n; cur != nil; cur = cur.Parent {
		before := cur.cachedHeight
		t.recompute(cur)
		if cur != n && cur.cachedHeight == before {
			return
		}
	}
}

func (t *Tree) lookup(item any) *TreeRowNode {
	n, ok := t.nodes[t.keyOf(item)]
	if !ok {
		return nil
	}
	return n
}

// Expand expands the node for item, discovering its children on first use.
// It reports whether anything changed.
func (t *Tree) Expand(item any) bool {
	n := t.lookup(item)
	if n == nil {
		return false
	}
	return t.ExpandNode(n)
}

// ExpandNode is Expand for a known node.
func (t *Tree) ExpandNode(n *TreeRowNode) bool {
	if n.Expanded {
		return false
	}
	t.discover(n)
	if len(n.children) == 0 {
		return false
	}
	n.Expanded = true
	t.propagate(n)
	return true
}

// Collapse collapses the node for item. Descendant state is kept.
func (t *Tree) Collapse(item any) bool {
	n := t.lookup(item)
	if n == nil {
		return false
	}
	return t.CollapseNode(n)
}

// CollapseNode is Collapse for a known node.
func (t *Tree) CollapseNode(n *TreeRowNode) bool {
	if !n.Expanded {
		return false
	}
	n.Expanded = false
	t.propagate(n)
	return true
}

// Toggle flips the expansion state of item.
func (t *Tree) Toggle(item any) bool {
	n := t.lookup(item)
	if n == nil {
		return false
	}
	if n.Expanded {
		return t.CollapseNode(n)
	}
	return t.ExpandNode(n)
}

// ExpandAll discovers and expands every node. Selectors are called for the
// entire hierarchy, so this must not be used on cyclic data.
func (t *Tree) ExpandAll() {
	var walk func(n *TreeRowNode)
	walk = func(n *TreeRowNode) {
		t.discover(n)
		n.Expanded = len(n.children) > 0
		for _, c := range n.children {
			walk(c)
		}
		t.recompute(n)
	}
	for _, r := range t.roots {
		walk(r)
	}
}

// CollapseAll collapses every discovered node.
func (t *Tree) CollapseAll() {
	var walk func(n *TreeRowNode)
	walk = func(n *TreeRowNode) {
		n.Expanded = false
		for _, c := range n.children {
			walk(c)
		}
		t.recompute(n)
	}
	for _, r := range t.roots {
		walk(r)
	}
}

// ExpandToLevel shows rows down to the given 1-based level: nodes shallower
// than level-1 are expanded, the rest collapsed.
func (t *Tree) ExpandToLevel(level int) {
	var walk func(n *TreeRowNode)
	walk = func(n *TreeRowNode) {
		if n.Depth < level-1 {
			t.discover(n)
			n.Expanded = len(n.children) > 0
		} else {
			n.Expanded = false
		}
		for _, c := range n.children {
			walk(c)
		}
		t.recompute(n)
	}
	for _, r := range t.roots {
		walk(r)
	}
}

// Refresh re-runs the selector for item after its child collection changed.
// Children that are still present keep their nodes and state; removed
// children are forgotten.
func (t *Tree) Refresh(item any) {
	n := t.lookup(item)
	if n == nil || !n.discovered {
		return
	}

	old := n.children
	n.discovered = false
	n.children = nil
	t.discover(n)

	keep := make(map[*TreeRowNode]bool, len(n.children))
	for _, c := range n.children {
		keep[c] = true
	}
	for _, c := range old {
		if !keep[c] {
			t.forget(c)
		}
	}
	if len(n.children) == 0 {
		n.Expanded = false
	}
	t.propagate(n)
}

// InvalidateHeight re-reads the own row extent of item and updates the
// cached heights of it and its ancestors.
func (t *Tree) InvalidateHeight(item any) {
	n := t.lookup(item)
	if n == nil {
		return
	}
	n.ownHeight = t.heightOf(n.Item)
	t.propagate(n)
}

// TotalExtent returns the summed height of all visible rows.
func (t *Tree) TotalExtent() float32 {
	var total float32
	for _, r := range t.roots {
		total += r.cachedHeight
	}
	return total
}

// VisibleRows returns the rows intersecting [offset, offset+viewport) in
// display order. Subtrees entirely outside the range are skipped using their
// cached heights, so the cost is proportional to depth times visible rows.
func (t *Tree) VisibleRows(offset, viewport float32) []Row {
	if viewport <= 0 {
		return nil
	}
	end := offset + viewport

	var rows []Row
	var walk func(nodes []*TreeRowNode, y float32) bool
	walk = func(nodes []*TreeRowNode, y float32) bool {
		for _, n := range nodes {
			if y >= end {
				return true
			}
			if y+n.cachedHeight <= offset {
				y += n.cachedHeight
				continue
			}
			if n.ownHeight > 0 && y+n.ownHeight > offset {
				rows = append(rows, Row{Node: n, Offset: y})
			}
			if n.Expanded {
				if walk(n.children, y+n.ownHeight) {
					return true
				}
			}
			y += n.cachedHeight
		}
		return false
	}
	walk(t.roots, 0)
	return rows
}

// Flatten returns every visible row.
func (t *Tree) Flatten() []Row {
	var rows []Row
	var walk func(nodes []*TreeRowNode, y float32) float32
	walk = func(nodes []*TreeRowNode, y float32) float32 {
		for _, n := range nodes {
			rows = append(rows, Row{Node: n, Offset: y})
			if n.Expanded {
				walk(n.children, y+n.ownHeight)
			}
			y += n.cachedHeight
		}
		return y
	}
	walk(t.roots, 0)
	return rows
}

// OffsetOf returns the content offset of item's row. It reports false when
// the item is unknown or hidden under a collapsed ancestor.
func (t *Tree) OffsetOf(item any) (float32, bool) {
	n := t.lookup(item)
	if n == nil {
		return 0, false
	}

	var off float32
	for cur := n; cur != nil; cur = cur.Parent {
		siblings := t.roots
		if cur.Parent != nil {
			if !cur.Parent.Expanded {
				return 0, false
			}
			siblings = cur.Parent.children
			off += cur.Parent.ownHeight
		}
		found := false
		for _, s := range siblings {
			if s == cur {
				found = true
				break
			}
			off += s.cachedHeight
		}
		if !found {
			return 0, false
		}
	}
	return off, true
}
