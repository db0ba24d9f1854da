package tw

import "github.com/agiangrant/lattice/retained"

// Apply parses classes and applies the base styles to n. Call it before the
// node is first measured; inside an ItemTemplate's New the result becomes
// part of the defaults a recycled node is restored to.
func Apply(n *retained.Node, classes string) *retained.Node {
	styles := Parse(classes)
	return ApplyStyle(n, styles.Base)
}

// ApplyForWidth applies the cascade resolved for a viewport width, so "md:p-8"
// takes effect at 768px and above.
func ApplyForWidth(n *retained.Node, classes string, width float32) *retained.Node {
	cfg := GetConfig()
	styles := cfg.Parse(classes)
	return ApplyStyle(n, styles.ResolveForWidth(width, cfg.Breakpoints))
}

// ApplyStyle writes every set field of s to n, leaving the rest unchanged.
func ApplyStyle(n *retained.Node, s Style) *retained.Node {
	if n == nil || s.IsZero() {
		return n
	}

	pad := n.Padding()
	setEdges(&pad, s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft)
	n.SetPadding(pad)

	margin := n.Margin()
	setEdges(&margin, s.MarginTop, s.MarginRight, s.MarginBottom, s.MarginLeft)
	n.SetMargin(margin)

	if s.Width != nil {
		n.SetWidth(*s.Width)
	}
	if s.Height != nil {
		n.SetHeight(*s.Height)
	}

	minSize := n.MinSize()
	setFloat(&minSize.Width, s.MinWidth)
	setFloat(&minSize.Height, s.MinHeight)
	n.SetMinSize(minSize)

	maxSize := n.MaxSize()
	setFloat(&maxSize.Width, s.MaxWidth)
	setFloat(&maxSize.Height, s.MaxHeight)
	n.SetMaxSize(maxSize)

	h, v := n.HorizontalAlignment(), n.VerticalAlignment()
	if s.HAlign != nil {
		h = *s.HAlign
	}
	if s.VAlign != nil {
		v = *s.VAlign
	}
	n.SetAlignment(h, v)

	if s.Collapsed != nil {
		n.SetCollapsed(*s.Collapsed)
	}
	return n
}

func setEdges(t *retained.Thickness, top, right, bottom, left *float32) {
	setFloat(&t.Top, top)
	setFloat(&t.Right, right)
	setFloat(&t.Bottom, bottom)
	setFloat(&t.Left, left)
}

func setFloat(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}
