package retained

// maxLayoutPasses bounds how often Layout re-runs when a pass leaves the
// tree dirty (e.g. a list re-windowing after its final height changed).
const maxLayoutPasses = 4

// HostStats counts layout work, for diagnostics.
type HostStats struct {
	Passes    uint64 // Measure+Arrange passes run
	Skipped   uint64 // Layout calls that found the tree clean
	WheelHits uint64 // Wheel events consumed by a scroll viewport
}

// Host drives layout passes for one node tree and routes wheel input to
// scroll viewports. A host is used from one goroutine; a pass runs to
// completion before Layout returns.
type Host struct {
	cfg  Config
	root *Node
	size Size

	// Coordinators scrolled by the wheel since the last Tick
	wheeled []*ScrollCoordinator

	stats HostStats
}

// NewHost creates a host with cfg. The layout debug switch follows
// cfg.Debug.Layout.
func NewHost(cfg Config) *Host {
	cfg = cfg.Validate()
	SetDebug(cfg.Debug.Layout)
	return &Host{cfg: cfg}
}

// Config returns the host's configuration.
func (h *Host) Config() Config { return h.cfg }

// Root returns the root node.
func (h *Host) Root() *Node { return h.root }

// SetRoot replaces the root node.
func (h *Host) SetRoot(n *Node) {
	if n != nil && n.parent != nil {
		contractViolation("SetRoot", n, "root node already has a parent")
	}
	h.root = n
	if n != nil {
		n.InvalidateMeasure()
	}
}

// Size returns the size of the last layout pass.
func (h *Host) Size() Size { return h.size }

// Stats returns layout counters.
func (h *Host) Stats() HostStats { return h.stats }

// NeedsLayout reports whether the next Layout call has work to do.
func (h *Host) NeedsLayout() bool {
	return h.root != nil && (h.root.NeedsMeasure() || h.root.NeedsArrange() || !h.root.arranged)
}

// Layout measures and arranges the tree for a viewport of the given size.
// It returns false when the tree was already clean at that size.
func (h *Host) Layout(size Size) bool {
	if h.root == nil {
		return false
	}
	if size != h.size {
		h.size = size
		h.root.InvalidateMeasure()
	}
	if !h.NeedsLayout() {
		h.stats.Skipped++
		return false
	}

	for pass := 0; pass < maxLayoutPasses && h.NeedsLayout(); pass++ {
		h.root.Measure(size, false)
		h.root.Arrange(Rect{Width: size.Width, Height: size.Height})
		h.stats.Passes++
		debugLog("[host] pass %d at %.0fx%.0f", pass, size.Width, size.Height)
	}
	return true
}

// HitTest returns the topmost node at p in host coordinates, or nil.
func (h *Host) HitTest(p Point) *Node {
	if h.root == nil {
		return nil
	}
	return h.root.HitTest(p)
}

// HitTestChain returns the topmost node at p with its ancestor chain.
func (h *Host) HitTestChain(p Point) *HitTestResult {
	if h.root == nil {
		return nil
	}
	return h.root.HitTestChain(p)
}

// DispatchWheel routes a wheel delta at p to the innermost scroll viewport
// under the pointer whose offset actually changes, bubbling outward when an
// inner viewport is already at its limit. It returns the node that scrolled.
//
// OnWheel handlers along the hit chain run first; a handler that calls
// PreventDefault suppresses the scroll.
func (h *Host) DispatchWheel(p Point, dx, dy float32) *Node {
	result := h.HitTestChain(p)
	if result == nil {
		return nil
	}

	e := &WheelEvent{X: p.X, Y: p.Y, LocalX: result.LocalX, LocalY: result.LocalY, DeltaX: dx, DeltaY: dy}
	e.propagate(result.Chain)
	if e.defaultPrevented {
		return nil
	}

	// Check the chain for scrollable containers (bottom-up)
	for i := len(result.Chain) - 1; i >= 0; i-- {
		n := result.Chain[i]
		s := n.Scroller()
		if s == nil {
			continue
		}
		s.BeginInteraction()
		if s.HandleScroll(e.DeltaX, e.DeltaY) {
			h.wheeled = append(h.wheeled, s)
			h.stats.WheelHits++
			return n
		}
		s.EndInteraction()
	}
	return nil
}

// Tick advances scroll animations by dt seconds and ends wheel
// interactions from the previous frame. It reports whether any animation
// is still running, i.e. whether the caller should keep ticking.
func (h *Host) Tick(dt float32) bool {
	for _, s := range h.wheeled {
		s.EndInteraction()
	}
	h.wheeled = h.wheeled[:0]

	if h.root == nil {
		return false
	}
	active := false
	h.root.Walk(func(n *Node) bool {
		if s := n.Scroller(); s != nil && s.Update(dt) {
			active = true
		}
		return true
	})
	return active
}
