package retained

// HitTestResult contains the result of a hit test.
type HitTestResult struct {
	Node   *Node
	LocalX float32 // Relative to the target's border box
	LocalY float32
	Chain  []*Node // Root to target
}

// HitTest returns the deepest hit-testable node containing p, where p is in
// the coordinate space n's Bounds are expressed in (for a root node, the
// host's space). Later children are tested first, since they draw on top.
// A node that contains p but none of whose children do is itself the target,
// so a scroll viewport's empty area still resolves to the viewport.
func (n *Node) HitTest(p Point) *Node {
	return hitTestRecursive(n, p, nil)
}

// HitTestChain is HitTest that also reports the path from n to the target.
func (n *Node) HitTestChain(p Point) *HitTestResult {
	chain := acquireHitChain(0)
	target := hitTestRecursive(n, p, &chain)
	if target == nil {
		releaseHitChain(chain)
		return nil
	}

	// Target origin expressed in the same space as p.
	b := target.AbsoluteBounds()
	origin := n.AbsoluteBounds()
	result := &HitTestResult{
		Node:   target,
		LocalX: p.X - (b.X - origin.X + n.position.X),
		LocalY: p.Y - (b.Y - origin.Y + n.position.Y),
		Chain:  make([]*Node, len(chain)),
	}
	copy(result.Chain, chain)
	releaseHitChain(chain)
	return result
}

// hitTestRecursive walks the tree to find the topmost node at p.
// Appends nodes to the chain as it descends when chain is non-nil.
func hitTestRecursive(n *Node, p Point, chain *[]*Node) *Node {
	if n.props.collapsed || !n.props.hitTestVisible || !n.arranged {
		return nil
	}

	bounds := n.Bounds()
	if !bounds.Contains(p) {
		return nil
	}

	// Check custom hit test (for non-rectangular content)
	if f, ok := n.leaf.(HitFilter); ok {
		if !f.HitTestContent(n, Point{X: p.X - bounds.X, Y: p.Y - bounds.Y}) {
			return nil
		}
	}

	if chain != nil {
		*chain = append(*chain, n)
	}

	// Children are positioned in content space; scroll viewports shift it.
	o := n.contentOrigin()
	local := Point{X: p.X - bounds.X - o.X, Y: p.Y - bounds.Y - o.Y}

	// Check children in reverse order (last child is drawn on top)
	for i := len(n.children) - 1; i >= 0; i-- {
		if target := hitTestRecursive(n.children[i], local, chain); target != nil {
			return target
		}
	}

	// No child was hit, this node is the target
	return n
}

// buildChainToRoot builds a slice from the root to n.
func buildChainToRoot(n *Node) []*Node {
	depth := n.Depth() + 1
	chain := make([]*Node, depth)
	for cur := n; cur != nil; cur = cur.parent {
		depth--
		chain[depth] = cur
	}
	return chain
}

// nearestScroller returns the closest scroll coordinator at or above n.
func nearestScroller(n *Node) (*Node, *ScrollCoordinator) {
	for cur := n; cur != nil; cur = cur.parent {
		if s := cur.Scroller(); s != nil {
			return cur, s
		}
	}
	return nil, nil
}
