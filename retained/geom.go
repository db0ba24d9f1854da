package retained

// Unconstrained is the "as much as you want" sentinel for an available
// extent. It is a large finite value rather than +Inf so arithmetic on it
// (subtracting margins, adding spacing) stays well defined; use
// IsUnconstrained to test for it after such arithmetic.
const Unconstrained float32 = 1 << 30

// IsUnconstrained reports whether v should be treated as an unbounded extent.
func IsUnconstrained(v float32) bool {
	return v >= Unconstrained/2
}

// Size is a width and height in pixels.
type Size struct {
	Width  float32
	Height float32
}

// UnconstrainedSize is unbounded on both axes.
var UnconstrainedSize = Size{Width: Unconstrained, Height: Unconstrained}

// Deflate shrinks s by t, never below zero. Unconstrained axes stay unconstrained.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  deflateExtent(s.Width, t.Left+t.Right),
		Height: deflateExtent(s.Height, t.Top+t.Bottom),
	}
}

// Inflate grows s by t. Unconstrained axes stay unconstrained.
func (s Size) Inflate(t Thickness) Size {
	return Size{
		Width:  inflateExtent(s.Width, t.Left+t.Right),
		Height: inflateExtent(s.Height, t.Top+t.Bottom),
	}
}

func deflateExtent(v, by float32) float32 {
	if IsUnconstrained(v) {
		return Unconstrained
	}
	v -= by
	if v < 0 {
		return 0
	}
	return v
}

func inflateExtent(v, by float32) float32 {
	if IsUnconstrained(v) {
		return Unconstrained
	}
	return v + by
}

// Point is a position in pixels.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Deflate shrinks r by t on each side, never to a negative size.
func (r Rect) Deflate(t Thickness) Rect {
	w := r.Width - t.Left - t.Right
	h := r.Height - t.Top - t.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + t.Left, Y: r.Y + t.Top, Width: w, Height: h}
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Thickness is a per-side inset, used for margin, padding and borders.
type Thickness struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Uniform returns a thickness of v on every side.
func Uniform(v float32) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Symmetric returns a thickness of h on the left/right and v on the top/bottom.
func Symmetric(h, v float32) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float32 { return t.Left + t.Right }

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float32 { return t.Top + t.Bottom }

// Alignment positions a node inside the slot its parent gives it.
type Alignment uint8

const (
	// AlignStretch fills the slot (the default).
	AlignStretch Alignment = iota
	AlignStart
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Orientation is the main axis of a stack.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// main and cross pick the axis components of s for orientation o.
func (o Orientation) main(s Size) float32 {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

func (o Orientation) cross(s Size) float32 {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

func (o Orientation) size(main, cross float32) Size {
	if o == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (o Orientation) rect(mainPos, crossPos, main, cross float32) Rect {
	if o == Horizontal {
		return Rect{X: mainPos, Y: crossPos, Width: main, Height: cross}
	}
	return Rect{X: crossPos, Y: mainPos, Width: cross, Height: main}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
