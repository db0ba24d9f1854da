package retained

// ============================================================================
// Event Phases
// ============================================================================

// EventPhase indicates when in the event propagation cycle we are.
type EventPhase uint8

const (
	// PhaseCapture - event travels from root down to target.
	// Parents can intercept before children see it.
	PhaseCapture EventPhase = iota

	// PhaseTarget - event is at the target node.
	PhaseTarget

	// PhaseBubble - event travels from target up to root.
	// Normal handling phase - most handlers use this.
	PhaseBubble
)

func (p EventPhase) String() string {
	switch p {
	case PhaseCapture:
		return "capture"
	case PhaseTarget:
		return "target"
	case PhaseBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// ============================================================================
// Wheel Events
// ============================================================================

// WheelEvent carries a wheel delta along the hit chain. Handlers run before
// the default handling, which scrolls the innermost viewport that can move.
type WheelEvent struct {
	X, Y           float32 // Host coordinates
	LocalX, LocalY float32 // Relative to the target's border box
	DeltaX, DeltaY float32

	target             *Node
	currentTarget      *Node
	phase              EventPhase
	propagationStopped bool
	defaultPrevented   bool
}

// WheelHandler observes or consumes a wheel event.
type WheelHandler func(e *WheelEvent)

// Target returns the node that was hit.
func (e *WheelEvent) Target() *Node { return e.target }

// CurrentTarget returns the node whose handler is running.
func (e *WheelEvent) CurrentTarget() *Node { return e.currentTarget }

// Phase returns the current propagation phase.
func (e *WheelEvent) Phase() EventPhase { return e.phase }

// StopPropagation prevents the event from reaching further handlers. The
// default scroll still happens.
func (e *WheelEvent) StopPropagation() { e.propagationStopped = true }

// IsPropagationStopped returns true if propagation was stopped.
func (e *WheelEvent) IsPropagationStopped() bool { return e.propagationStopped }

// PreventDefault suppresses the default scroll.
func (e *WheelEvent) PreventDefault() { e.defaultPrevented = true }

// IsDefaultPrevented returns true if default was prevented.
func (e *WheelEvent) IsDefaultPrevented() bool { return e.defaultPrevented }

// OnWheel registers a handler that runs when the event bubbles through n
// (or reaches it as the target).
func (n *Node) OnWheel(h WheelHandler) *Node {
	n.wheel = h
	return n
}

// OnWheelCapture registers a handler that runs on the way down, before any
// descendant sees the event.
func (n *Node) OnWheelCapture(h WheelHandler) *Node {
	n.wheelCapture = h
	return n
}

// propagate runs capture handlers root to target, then bubble handlers
// target to root. Both run in PhaseTarget at the target itself.
func (e *WheelEvent) propagate(chain []*Node) {
	if len(chain) == 0 {
		return
	}
	last := len(chain) - 1
	e.target = chain[last]

	for i, n := range chain {
		if e.run(n, n.wheelCapture, i == last, PhaseCapture) {
			return
		}
	}
	for i := last; i >= 0; i-- {
		if e.run(chain[i], chain[i].wheel, i == last, PhaseBubble) {
			return
		}
	}
}

// run invokes h at n and reports whether propagation stopped.
func (e *WheelEvent) run(n *Node, h WheelHandler, atTarget bool, phase EventPhase) bool {
	if h == nil {
		return false
	}
	e.currentTarget, e.phase = n, phase
	if atTarget {
		e.phase = PhaseTarget
	}
	h(e)
	return e.propagationStopped
}
