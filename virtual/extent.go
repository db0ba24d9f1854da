// Package virtual computes which items of a large scrolled sequence need to be
// realized, and flattens lazily discovered hierarchies into such a sequence.
//
// Nothing in this package creates visual nodes. It only answers questions
// like "which logical indices intersect this viewport" and "where does row k
// start", so the retained layer can realize the minimum set of children.
package virtual

import "sort"

// ExtentIndex maps logical item indices to offsets along the scroll axis.
type ExtentIndex interface {
	// Len returns the number of items.
	Len() int

	// Offset returns the start offset of item i.
	Offset(i int) float32

	// Extent returns the extent of item i.
	Extent(i int) float32

	// Total returns the summed extent of all items.
	Total() float32

	// IndexAt returns the item whose interval contains offset, clamped to
	// [0, Len-1]. It returns -1 only when there are no items.
	IndexAt(offset float32) int
}

// Uniform is an ExtentIndex where every item has the same extent.
type Uniform struct {
	Count      int
	ItemExtent float32
}

func (u Uniform) Len() int { return u.Count }

func (u Uniform) Offset(i int) float32 {
	return float32(i) * u.ItemExtent
}

func (u Uniform) Extent(int) float32 {
	return u.ItemExtent
}

func (u Uniform) Total() float32 {
	return float32(u.Count) * u.ItemExtent
}

func (u Uniform) IndexAt(offset float32) int {
	if u.Count == 0 {
		return -1
	}
	if u.ItemExtent <= 0 || offset <= 0 {
		return 0
	}
	i := int(offset / u.ItemExtent)
	if i >= u.Count {
		i = u.Count - 1
	}
	return i
}

// Variable is an ExtentIndex over items of differing extent.
//
// Prefix sums are built lazily and cached. Offset, Extent and IndexAt read
// extents only up to the index they need; Total reads every item not yet
// cached, once. Window.Compute needs Total to clamp the offset, so the first
// pass over a sequence reads each extent a single time and later passes are
// served from the cache. Invalidate discards sums from an index onward after
// an item changes size.
type Variable struct {
	n      int
	extent func(i int) float32

	// prefix[i] is the offset of item i. Always at least {0}.
	prefix []float32
}

// NewVariable creates an index over n items whose extents are supplied by fn.
func NewVariable(n int, fn func(i int) float32) *Variable {
	if n < 0 {
		n = 0
	}
	return &Variable{n: n, extent: fn, prefix: []float32{0}}
}

func (v *Variable) Len() int { return v.n }

// SetLen changes the item count, keeping any prefix sums still valid.
func (v *Variable) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	v.n = n
	if len(v.prefix) > n+1 {
		v.prefix = v.prefix[:n+1]
	}
}

// Invalidate drops cached offsets after item i, so the next query re-reads
// extents from i onward.
func (v *Variable) Invalidate(i int) {
	if i < 0 {
		i = 0
	}
	if len(v.prefix) > i+1 {
		v.prefix = v.prefix[:i+1]
	}
}

// Computed returns how many item offsets are currently cached.
func (v *Variable) Computed() int {
	return len(v.prefix) - 1
}

// ensure extends the prefix sums so prefix[k] is available.
func (v *Variable) ensure(k int) {
	if k > v.n {
		k = v.n
	}
	for len(v.prefix) <= k {
		i := len(v.prefix) - 1
		e := v.extent(i)
		if e < 0 {
			e = 0
		}
		v.prefix = append(v.prefix, v.prefix[i]+e)
	}
}

func (v *Variable) Offset(i int) float32 {
	if i <= 0 {
		return 0
	}
	if i > v.n {
		i = v.n
	}
	v.ensure(i)
	return v.prefix[i]
}

func (v *Variable) Extent(i int) float32 {
	if i < 0 || i >= v.n {
		return 0
	}
	v.ensure(i + 1)
	return v.prefix[i+1] - v.prefix[i]
}

func (v *Variable) Total() float32 {
	v.ensure(v.n)
	return v.prefix[v.n]
}

func (v *Variable) IndexAt(offset float32) int {
	if v.n == 0 {
		return -1
	}
	if offset <= 0 {
		return 0
	}

	// Extend until the cached sums pass offset or cover every item.
	for v.prefix[len(v.prefix)-1] <= offset && len(v.prefix) <= v.n {
		v.ensure(len(v.prefix))
	}

	// Largest i with prefix[i] <= offset.
	cached := v.prefix
	i := sort.Search(len(cached), func(k int) bool { return cached[k] > offset }) - 1
	if i >= v.n {
		i = v.n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
