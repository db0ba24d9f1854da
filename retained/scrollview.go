package retained

// ScrollView hosts a single content node larger than its viewport.
//
// Content is measured with Unconstrained on each scrolling axis and
// arranged at its full size in content space; the coordinator's offset is
// applied when translating to the viewport (hit testing, absolute bounds).
type ScrollView struct {
	node     *Node
	scroller *ScrollCoordinator
}

// NewScrollView creates a vertically scrolling viewport around content.
func NewScrollView(cfg Config, content *Node) *ScrollView {
	sv := &ScrollView{node: NewNode("scroll-view"), scroller: NewScrollCoordinator(cfg)}
	sv.node.layout = sv
	if content != nil {
		sv.node.AddChild(content)
	}
	return sv
}

// Node returns the viewport's tree node.
func (sv *ScrollView) Node() *Node { return sv.node }

// Scroller returns the viewport's scroll coordinator.
func (sv *ScrollView) Scroller() *ScrollCoordinator { return sv.scroller }

// SetAxes chooses which axes scroll.
func (sv *ScrollView) SetAxes(horizontal, vertical bool) *ScrollView {
	sv.scroller.SetAxes(horizontal, vertical)
	sv.node.InvalidateMeasure()
	return sv
}

// Content returns the hosted node, or nil.
func (sv *ScrollView) Content() *Node {
	return sv.node.Child(0)
}

// BringIntoView scrolls so that target, a descendant of the content, is
// visible with padding around it.
func (sv *ScrollView) BringIntoView(target *Node, padding float32, animated bool) bool {
	content := sv.Content()
	if content == nil || target == nil {
		return false
	}
	// Target rect in content space: absolute bounds relative to the
	// content's own absolute origin, plus the current offset.
	tb := target.AbsoluteBounds()
	cb := content.AbsoluteBounds()
	r := Rect{
		X:      tb.X - cb.X + content.position.X,
		Y:      tb.Y - cb.Y + content.position.Y,
		Width:  tb.Width,
		Height: tb.Height,
	}
	return sv.scroller.ScrollIntoView(r, padding, animated)
}

func (sv *ScrollView) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	horizontal, vertical := sv.scroller.Axes()
	inner := available
	if horizontal {
		inner.Width = Unconstrained
	}
	if vertical {
		inner.Height = Unconstrained
	}

	var content Size
	for _, c := range n.children {
		d := c.Measure(inner, dontStretch)
		content.Width = maxf(content.Width, d.Width)
		content.Height = maxf(content.Height, d.Height)
	}

	// The viewport never asks for more than it is offered.
	if !IsUnconstrained(available.Width) {
		content.Width = minf(content.Width, available.Width)
	}
	if !IsUnconstrained(available.Height) {
		content.Height = minf(content.Height, available.Height)
	}
	return content
}

func (sv *ScrollView) ArrangeChildren(n *Node, final Size) {
	horizontal, vertical := sv.scroller.Axes()

	var extent Size
	for _, c := range n.children {
		w, h := final.Width, final.Height
		if horizontal {
			w = maxf(w, c.desiredSize.Width)
		}
		if vertical {
			h = maxf(h, c.desiredSize.Height)
		}
		c.Arrange(Rect{Width: w, Height: h})
		extent.Width = maxf(extent.Width, w)
		extent.Height = maxf(extent.Height, h)
	}
	sv.scroller.SetExtents(extent, final)
}
