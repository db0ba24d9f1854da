package virtual

// Range is an inclusive span of logical indices. An empty range has Last < First.
type Range struct {
	First int
	Last  int
}

// EmptyRange realizes nothing.
var EmptyRange = Range{First: 0, Last: -1}

func (r Range) Empty() bool { return r.Last < r.First }

func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

func (r Range) Contains(i int) bool {
	return i >= r.First && i <= r.Last
}

// Window describes a viewport over a scrolled sequence.
type Window struct {
	Offset   float32
	Viewport float32

	// Overscan is the number of extra items realized after the last
	// visible one, so small scrolls do not realize on every frame.
	Overscan int
}

// Compute returns the indices intersecting the viewport plus trailing
// overscan. The offset is clamped to [0, max(0, total-viewport)] first, so a
// stale offset after the sequence shrinks still yields a valid range.
func (w Window) Compute(idx ExtentIndex) Range {
	n := idx.Len()
	if n == 0 || w.Viewport <= 0 {
		return EmptyRange
	}

	offset := ClampOffset(w.Offset, idx.Total(), w.Viewport)
	end := offset + w.Viewport

	first := idx.IndexAt(offset)
	last := idx.IndexAt(end)
	// An item that starts exactly at the viewport end is not visible.
	if last > first && idx.Offset(last) >= end {
		last--
	}

	if w.Overscan > 0 {
		last += w.Overscan
	}
	if last > n-1 {
		last = n - 1
	}
	return Range{First: first, Last: last}
}

// ClampOffset clamps a scroll offset to [0, max(0, content-viewport)].
func ClampOffset(offset, content, viewport float32) float32 {
	limit := content - viewport
	if limit < 0 {
		limit = 0
	}
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
