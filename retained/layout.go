package retained

import (
	"fmt"
)

var layoutDebug = false // Set to true for debug logging

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// SetDebug toggles layout debug logging.
func SetDebug(enabled bool) {
	layoutDebug = enabled
}

// Measure asks the node how big it wants to be given an available size and
// returns its desired size including margin.
//
// Either axis of available may be Unconstrained. When dontStretch is false,
// a Stretch-aligned node grows to fill a finite available extent; when true
// it reports its intrinsic size, which is what stacks and auto tracks need.
// A node that is clean and sees the same inputs returns its cached result.
func (n *Node) Measure(available Size, dontStretch bool) Size {
	p := &n.props

	if p.collapsed {
		n.measuredSize = Size{}
		n.desiredSize = Size{}
		n.finishMeasure(available, dontStretch)
		return Size{}
	}

	if n.measured && n.dirty&dirtyMeasure == 0 &&
		n.lastAvailable == available && n.lastNoStretch == dontStretch {
		return n.desiredSize
	}

	// Slot available to the border box.
	inner := available.Deflate(p.margin)
	if p.hasWidth {
		inner.Width = p.width
	}
	if p.hasHeight {
		inner.Height = p.height
	}
	inner.Width = minf(inner.Width, p.maxSize.Width)
	inner.Height = minf(inner.Height, p.maxSize.Height)

	content := inner.Deflate(p.padding)

	var desired Size
	switch {
	case n.layout != nil:
		desired = n.layout.MeasureChildren(n, content, dontStretch)
	case n.leaf != nil:
		desired = n.leaf.MeasureContent(n, content, dontStretch)
	default:
		desired = measureOverlay(n, content, dontStretch)
	}
	desired = n.sanitize(desired)
	desired = Size{
		Width:  desired.Width + p.padding.Horizontal(),
		Height: desired.Height + p.padding.Vertical(),
	}

	if !dontStretch {
		if p.hAlign == AlignStretch && !IsUnconstrained(inner.Width) && desired.Width < inner.Width {
			desired.Width = inner.Width
		}
		if p.vAlign == AlignStretch && !IsUnconstrained(inner.Height) && desired.Height < inner.Height {
			desired.Height = inner.Height
		}
	}
	if p.hasWidth {
		desired.Width = p.width
	}
	if p.hasHeight {
		desired.Height = p.height
	}
	desired.Width = clampf(desired.Width, p.minSize.Width, p.maxSize.Width)
	desired.Height = clampf(desired.Height, p.minSize.Height, p.maxSize.Height)

	n.measuredSize = desired
	n.desiredSize = Size{
		Width:  desired.Width + p.margin.Horizontal(),
		Height: desired.Height + p.margin.Vertical(),
	}
	n.finishMeasure(available, dontStretch)

	debugLog("[measure] %s#%d avail=%.1fx%.1f noStretch=%v -> %.1fx%.1f",
		n.name, n.id, available.Width, available.Height, dontStretch,
		n.measuredSize.Width, n.measuredSize.Height)
	return n.desiredSize
}

func (n *Node) finishMeasure(available Size, dontStretch bool) {
	n.measured = true
	n.lastAvailable = available
	n.lastNoStretch = dontStretch
	n.dirty &^= dirtyMeasure
	n.dirty |= dirtyArrange
}

// sanitize rejects results that leaked the unconstrained sentinel or went
// negative. Either would poison every ancestor's arithmetic.
func (n *Node) sanitize(s Size) Size {
	if IsUnconstrained(s.Width) || s.Width < 0 {
		debugLog("[measure] %s#%d reported invalid width %.1f", n.name, n.id, s.Width)
		s.Width = 0
	}
	if IsUnconstrained(s.Height) || s.Height < 0 {
		debugLog("[measure] %s#%d reported invalid height %.1f", n.name, n.id, s.Height)
		s.Height = 0
	}
	return s
}

// Arrange assigns the node its final slot in the parent's content space.
// The rect includes the margin. Arrange panics with a ContractError if the
// node has never been measured.
func (n *Node) Arrange(final Rect) {
	if !n.measured {
		contractViolation("Arrange", n, "node has not been measured")
	}
	p := &n.props

	if n.dirty&dirtyMeasure != 0 {
		// Invalidated between passes; re-measure with the last inputs.
		debugLog("[arrange] %s#%d measure is stale, re-measuring", n.name, n.id)
		n.Measure(n.lastAvailable, n.lastNoStretch)
	}

	if p.collapsed {
		n.position = Point{X: final.X, Y: final.Y}
		n.arrangedSize = Size{}
		n.finishArrange(final)
		return
	}

	if n.arranged && n.dirty&dirtyArrange == 0 && n.lastFinal == final {
		return
	}

	slot := final.Deflate(p.margin)
	w := arrangedExtent(p.hAlign, p.hasWidth, slot.Width, n.measuredSize.Width)
	h := arrangedExtent(p.vAlign, p.hasHeight, slot.Height, n.measuredSize.Height)
	w = clampf(w, p.minSize.Width, p.maxSize.Width)
	h = clampf(h, p.minSize.Height, p.maxSize.Height)

	n.position = Point{
		X: slot.X + alignOffset(p.hAlign, slot.Width, w),
		Y: slot.Y + alignOffset(p.vAlign, slot.Height, h),
	}
	n.arrangedSize = Size{Width: w, Height: h}

	content := n.arrangedSize.Deflate(p.padding)
	switch {
	case n.layout != nil:
		n.layout.ArrangeChildren(n, content)
	case n.leaf == nil:
		arrangeOverlay(n, content)
	}

	n.finishArrange(final)
	debugLog("[arrange] %s#%d -> (%.1f, %.1f) %.1fx%.1f",
		n.name, n.id, n.position.X, n.position.Y, w, h)
}

func (n *Node) finishArrange(final Rect) {
	n.arranged = true
	n.lastFinal = final
	n.dirty &^= dirtyArrange
}

// arrangedExtent picks the final extent on one axis. Stretch fills the slot
// unless an explicit size is set, in which case the node keeps it and is
// placed at the start.
func arrangedExtent(a Alignment, explicit bool, slot, measured float32) float32 {
	if a == AlignStretch && !explicit {
		return slot
	}
	return measured
}

func alignOffset(a Alignment, slot, extent float32) float32 {
	switch a {
	case AlignCenter:
		return (slot - extent) / 2
	case AlignEnd:
		return slot - extent
	default:
		return 0
	}
}

// measureOverlay sizes a plain node to its largest child.
func measureOverlay(n *Node, available Size, dontStretch bool) Size {
	var size Size
	for _, c := range n.children {
		d := c.Measure(available, dontStretch)
		size.Width = maxf(size.Width, d.Width)
		size.Height = maxf(size.Height, d.Height)
	}
	return size
}

// arrangeOverlay gives every child the whole content box.
func arrangeOverlay(n *Node, final Size) {
	for _, c := range n.children {
		c.Arrange(Rect{Width: final.Width, Height: final.Height})
	}
}

// ============================================================================
// Layout Results
// ============================================================================

// IsMeasured reports whether the node has been measured at least once.
func (n *Node) IsMeasured() bool { return n.measured }

// MeasuredSize is the border-box size from the last measure, excluding margin.
func (n *Node) MeasuredSize() Size { return n.measuredSize }

// DesiredSize is the size the node asked its parent for, including margin.
func (n *Node) DesiredSize() Size { return n.desiredSize }

// ArrangedSize is the border-box size from the last arrange.
func (n *Node) ArrangedSize() Size { return n.arrangedSize }

// Position is the border-box origin in the parent's content space.
func (n *Node) Position() Point { return n.position }

// Bounds is the border box in the parent's content space.
func (n *Node) Bounds() Rect {
	return Rect{X: n.position.X, Y: n.position.Y, Width: n.arrangedSize.Width, Height: n.arrangedSize.Height}
}

// contentOrigin is the offset from the border-box origin to the content
// box, minus any scroll offset of this node.
func (n *Node) contentOrigin() Point {
	o := Point{X: n.props.padding.Left, Y: n.props.padding.Top}
	if s := n.Scroller(); s != nil {
		off := s.Offset()
		o.X -= off.X
		o.Y -= off.Y
	}
	return o
}

// ContentOrigin returns where children are placed relative to the node's
// border-box origin: the padding inset, shifted by any scroll offset.
func (n *Node) ContentOrigin() Point { return n.contentOrigin() }

// AbsoluteBounds returns the border box in root coordinates, accounting for
// ancestor padding and scroll offsets.
func (n *Node) AbsoluteBounds() Rect {
	x, y := n.position.X, n.position.Y
	for p := n.parent; p != nil; p = p.parent {
		o := p.contentOrigin()
		x += p.position.X + o.X
		y += p.position.Y + o.Y
	}
	return Rect{X: x, Y: y, Width: n.arrangedSize.Width, Height: n.arrangedSize.Height}
}
