package retained

// Image is a leaf with a natural pixel size that scales preserving its
// aspect ratio. Pixel data is not held here; the node only reserves space.
type Image struct {
	node    *Node
	natural Size
	source  string

	defaults *Image
}

// NewImage creates an image leaf with the given natural size.
func NewImage(source string, natural Size) *Image {
	img := &Image{node: NewNode("image"), natural: natural, source: source}
	img.node.leaf = img
	return img
}

// Node returns the image's tree node.
func (img *Image) Node() *Node { return img.node }

// Source returns the image source identifier.
func (img *Image) Source() string { return img.source }

// NaturalSize returns the unscaled size.
func (img *Image) NaturalSize() Size { return img.natural }

// SetNaturalSize updates the unscaled size, e.g. once decoding finished.
func (img *Image) SetNaturalSize(s Size) *Image {
	if img.natural != s {
		img.natural = s
		img.node.InvalidateMeasure()
	}
	return img
}

func (img *Image) snapshotDefaults() {
	img.defaults = &Image{natural: img.natural, source: img.source}
}

func (img *Image) resetToDefaults() {
	if d := img.defaults; d != nil {
		img.natural, img.source = d.natural, d.source
	}
}

// MeasureContent fits the natural size into available. One dimension is
// only ever derived from the other when that other is finite: deriving a
// height from an unconstrained width (or the reverse) would turn the
// sentinel into an enormous real size.
func (img *Image) MeasureContent(n *Node, available Size, dontStretch bool) Size {
	nat := img.natural
	if nat.Width <= 0 || nat.Height <= 0 {
		return Size{}
	}
	ratio := nat.Width / nat.Height

	wFinite := !IsUnconstrained(available.Width)
	hFinite := !IsUnconstrained(available.Height)

	// Stretch-aligned images grow to fill a finite width when allowed.
	fillWidth := !dontStretch && wFinite && n.props.hAlign == AlignStretch

	var w, h float32
	switch {
	case wFinite && hFinite:
		w = minf(nat.Width, available.Width)
		if fillWidth {
			w = available.Width
		}
		h = w / ratio
		if h > available.Height {
			h = available.Height
			w = h * ratio
		}
	case wFinite:
		w = minf(nat.Width, available.Width)
		if fillWidth {
			w = available.Width
		}
		h = w / ratio
	case hFinite:
		h = minf(nat.Height, available.Height)
		w = h * ratio
	default:
		w, h = nat.Width, nat.Height
	}
	return Size{Width: w, Height: h}
}
