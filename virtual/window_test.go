package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_RealizesOnlyVisiblePlusOverscan(t *testing.T) {
	idx := Uniform{Count: 1000, ItemExtent: 30}

	r := Window{Offset: 0, Viewport: 300, Overscan: 1}.Compute(idx)
	assert.Equal(t, Range{First: 0, Last: 10}, r)
	assert.LessOrEqual(t, r.Len(), 12)

	r = Window{Offset: 3000, Viewport: 300, Overscan: 1}.Compute(idx)
	assert.Equal(t, 100, r.First)
	assert.LessOrEqual(t, r.Len(), 12)
}

func TestWindow_PartialRows(t *testing.T) {
	idx := Uniform{Count: 100, ItemExtent: 30}

	r := Window{Offset: 15, Viewport: 300}.Compute(idx)
	assert.Equal(t, Range{First: 0, Last: 10}, r)
}

func TestWindow_ClampsStaleOffset(t *testing.T) {
	idx := Uniform{Count: 20, ItemExtent: 30} // total 600

	r := Window{Offset: 5000, Viewport: 300}.Compute(idx)
	assert.Equal(t, Range{First: 10, Last: 19}, r)

	r = Window{Offset: -50, Viewport: 300}.Compute(idx)
	assert.Equal(t, 0, r.First)
}

func TestWindow_ContentSmallerThanViewport(t *testing.T) {
	r := Window{Offset: 40, Viewport: 300, Overscan: 2}.Compute(Uniform{Count: 3, ItemExtent: 30})
	assert.Equal(t, Range{First: 0, Last: 2}, r)
}

func TestWindow_Empty(t *testing.T) {
	assert.True(t, Window{Viewport: 300}.Compute(Uniform{}).Empty())
	assert.True(t, Window{Viewport: 0}.Compute(Uniform{Count: 5, ItemExtent: 10}).Empty())
	assert.Equal(t, 0, EmptyRange.Len())
}

func TestWindow_VariableExtents(t *testing.T) {
	heights := []float32{100, 10, 10, 10, 200, 10}
	v := NewVariable(len(heights), func(i int) float32 { return heights[i] })

	r := Window{Offset: 105, Viewport: 50}.Compute(v)
	assert.Equal(t, Range{First: 1, Last: 4}, r)
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, float32(0), ClampOffset(-1, 100, 50))
	assert.Equal(t, float32(50), ClampOffset(80, 100, 50))
	assert.Equal(t, float32(0), ClampOffset(80, 20, 50))
	assert.Equal(t, float32(10), ClampOffset(10, 100, 50))
}

func TestRange(t *testing.T) {
	r := Range{First: 2, Last: 5}
	assert.Equal(t, 4, r.Len())
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.False(t, r.Empty())
}
