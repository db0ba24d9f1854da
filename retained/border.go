package retained

// Border decorates a single child with a stroke. The stroke thickness is
// taken out of the child's available size during measure and added back
// around it during arrange; padding is handled by the node itself.
type Border struct {
	node      *Node
	thickness Thickness

	defaultThickness Thickness
}

// NewBorder creates a bordered container around child (which may be nil).
func NewBorder(thickness Thickness, child *Node) *Border {
	b := &Border{node: NewNode("border"), thickness: thickness}
	b.node.layout = b
	if child != nil {
		b.node.AddChild(child)
	}
	return b
}

// Node returns the border's tree node.
func (b *Border) Node() *Node { return b.node }

// Thickness returns the stroke thickness.
func (b *Border) Thickness() Thickness { return b.thickness }

// SetThickness changes the stroke thickness.
func (b *Border) SetThickness(t Thickness) *Border {
	if b.thickness != t {
		b.thickness = t
		b.node.InvalidateMeasure()
	}
	return b
}

// SetChild replaces the content.
func (b *Border) SetChild(child *Node) *Border {
	b.node.ClearChildren()
	if child != nil {
		b.node.AddChild(child)
	}
	return b
}

func (b *Border) snapshotDefaults() { b.defaultThickness = b.thickness }

func (b *Border) resetToDefaults() { b.thickness = b.defaultThickness }

func (b *Border) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	inner := available.Deflate(b.thickness)
	var content Size
	for _, c := range n.children {
		d := c.Measure(inner, dontStretch)
		content.Width = maxf(content.Width, d.Width)
		content.Height = maxf(content.Height, d.Height)
	}
	return content.Inflate(b.thickness)
}

func (b *Border) ArrangeChildren(n *Node, final Size) {
	r := Rect{Width: final.Width, Height: final.Height}.Deflate(b.thickness)
	for _, c := range n.children {
		c.Arrange(r)
	}
}
