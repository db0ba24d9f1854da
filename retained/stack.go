package retained

// StackLine is one run of children along the main axis of a wrapping stack.
type StackLine struct {
	Start int     // Index of the first child on the line
	End   int     // Index after the last child (exclusive)
	Main  float32 // Summed main-axis extent including spacing
	Cross float32 // Largest cross-axis extent on the line
}

// Stack lays out children sequentially along one axis.
//
// Children are measured with their intrinsic size (dontStretch) and get the
// full cross-axis extent at arrange, where their own alignment applies. With
// Wrap enabled, a child that would overflow the main axis starts a new line;
// every line holds at least one child. Lines are broken at measure and kept
// through arrange.
type Stack struct {
	node        *Node
	orientation Orientation
	spacing     float32
	wrap        bool

	lines []StackLine

	defaultSpacing float32
	defaultWrap    bool
}

// NewStack creates a stack with the given main axis.
func NewStack(o Orientation, children ...*Node) *Stack {
	s := &Stack{node: NewNode(o.String() + "-stack"), orientation: o}
	s.node.layout = s
	for _, c := range children {
		s.node.AddChild(c)
	}
	return s
}

// NewVStack creates a vertical stack.
func NewVStack(children ...*Node) *Stack {
	return NewStack(Vertical, children...)
}

// NewHStack creates a horizontal stack.
func NewHStack(children ...*Node) *Stack {
	return NewStack(Horizontal, children...)
}

// Node returns the stack's tree node.
func (s *Stack) Node() *Node { return s.node }

// Add appends children.
func (s *Stack) Add(children ...*Node) *Stack {
	for _, c := range children {
		s.node.AddChild(c)
	}
	return s
}

// Orientation returns the main axis.
func (s *Stack) Orientation() Orientation { return s.orientation }

// SetSpacing sets the gap between adjacent children (and between lines).
func (s *Stack) SetSpacing(v float32) *Stack {
	if s.spacing != v {
		s.spacing = v
		s.node.InvalidateMeasure()
	}
	return s
}

// SetWrap enables line wrapping.
func (s *Stack) SetWrap(wrap bool) *Stack {
	if s.wrap != wrap {
		s.wrap = wrap
		s.node.InvalidateMeasure()
	}
	return s
}

func (s *Stack) snapshotDefaults() {
	s.defaultSpacing, s.defaultWrap = s.spacing, s.wrap
}

func (s *Stack) resetToDefaults() {
	s.spacing, s.wrap = s.defaultSpacing, s.defaultWrap
	s.lines = s.lines[:0]
}

// Lines returns the lines from the last layout pass.
func (s *Stack) Lines() []StackLine { return s.lines }

func (s *Stack) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	o := s.orientation
	mainAvail := o.main(available)
	crossAvail := o.cross(available)

	if s.wrap {
		for _, c := range n.children {
			c.Measure(o.size(mainAvail, crossAvail), true)
		}
		s.lines = s.breakLines(n.children, mainAvail)
		return s.linesExtent()
	}

	var consumed, crossMax float32
	count := 0
	for _, c := range n.children {
		if c.props.collapsed {
			c.Measure(available, true)
			continue
		}
		if count > 0 {
			consumed += s.spacing
		}
		remaining := mainAvail
		if !IsUnconstrained(mainAvail) {
			remaining = maxf(0, mainAvail-consumed)
		}
		d := c.Measure(o.size(remaining, crossAvail), true)
		consumed += o.main(d)
		crossMax = maxf(crossMax, o.cross(d))
		count++
	}
	s.lines = []StackLine{{Start: 0, End: len(n.children), Main: consumed, Cross: crossMax}}
	return o.size(consumed, crossMax)
}

// breakLines groups children into lines no longer than mainSize.
// Collapsed children take no space and no spacing.
func (s *Stack) breakLines(children []*Node, mainSize float32) []StackLine {
	o := s.orientation
	var lines []StackLine

	lineStart := 0
	var lineMain, lineCross float32
	itemCount := 0

	for i, c := range children {
		if c.props.collapsed {
			continue
		}
		d := c.desiredSize
		itemSize := o.main(d)
		gapForItem := float32(0)
		if itemCount > 0 {
			gapForItem = s.spacing
		}

		// Always put at least one item per line
		if itemCount > 0 && lineMain+gapForItem+itemSize > mainSize {
			lines = append(lines, StackLine{Start: lineStart, End: i, Main: lineMain, Cross: lineCross})
			lineStart = i
			lineMain = itemSize
			lineCross = o.cross(d)
			itemCount = 1
			continue
		}
		lineMain += gapForItem + itemSize
		lineCross = maxf(lineCross, o.cross(d))
		itemCount++
	}

	// Don't forget the last line
	if itemCount > 0 || len(lines) == 0 {
		lines = append(lines, StackLine{Start: lineStart, End: len(children), Main: lineMain, Cross: lineCross})
	}
	return lines
}

func (s *Stack) linesExtent() Size {
	var main, cross float32
	for i, l := range s.lines {
		main = maxf(main, l.Main)
		cross += l.Cross
		if i > 0 {
			cross += s.spacing
		}
	}
	return s.orientation.size(main, cross)
}

func (s *Stack) ArrangeChildren(n *Node, final Size) {
	o := s.orientation

	if !s.wrap {
		var pos float32
		count := 0
		for _, c := range n.children {
			if c.props.collapsed {
				c.Arrange(o.rect(pos, 0, 0, 0))
				continue
			}
			if count > 0 {
				pos += s.spacing
			}
			extent := o.main(c.desiredSize)
			c.Arrange(o.rect(pos, 0, extent, o.cross(final)))
			pos += extent
			count++
		}
		return
	}

	// Lines stay as measured: the node's cross extent was sized for them,
	// and breaking again at a narrower arranged extent would spill past it.
	var crossPos float32
	for li, l := range s.lines {
		if li > 0 {
			crossPos += s.spacing
		}
		var pos float32
		count := 0
		for i := l.Start; i < l.End; i++ {
			c := n.children[i]
			if c.props.collapsed {
				c.Arrange(o.rect(pos, crossPos, 0, 0))
				continue
			}
			if count > 0 {
				pos += s.spacing
			}
			extent := o.main(c.desiredSize)
			c.Arrange(o.rect(pos, crossPos, extent, l.Cross))
			pos += extent
			count++
		}
		crossPos += l.Cross
	}
}
