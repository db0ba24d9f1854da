package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sized(name string, w, h float32) *Node {
	return NewNode(name).SetSize(w, h)
}

func TestStack_VerticalSequence(t *testing.T) {
	a, b, c := NewNode("a").SetHeight(10), NewNode("b").SetHeight(20), NewNode("c").SetHeight(10)
	s := NewVStack(a, b, c).SetSpacing(5)
	layoutRoot(t, s.Node(), 100, 200)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 100, Height: 10}, a.Bounds())
	assert.Equal(t, Rect{X: 0, Y: 15, Width: 100, Height: 20}, b.Bounds())
	assert.Equal(t, Rect{X: 0, Y: 40, Width: 100, Height: 10}, c.Bounds())

	require.Len(t, s.Lines(), 1)
	assert.Equal(t, float32(50), s.Lines()[0].Main)
}

func TestStack_IntrinsicSize(t *testing.T) {
	s := NewHStack(sized("a", 30, 10), sized("b", 20, 25)).SetSpacing(4)

	d := s.Node().Measure(UnconstrainedSize, true)
	assert.Equal(t, Size{Width: 54, Height: 25}, d)

	empty := NewVStack()
	assert.Equal(t, Size{}, empty.Node().Measure(Size{Width: 100, Height: 100}, true))
}

func TestStack_CrossAlignment(t *testing.T) {
	centered := sized("c", 20, 10)
	centered.SetAlignment(AlignCenter, AlignStart)
	s := NewVStack(centered)
	layoutRoot(t, s.Node(), 100, 100)

	assert.Equal(t, Point{X: 40, Y: 0}, centered.Position())
}

func TestStack_CollapsedTakesNoSpacing(t *testing.T) {
	a, b, c := NewNode("a").SetHeight(10), NewNode("b").SetHeight(10), NewNode("c").SetHeight(10)
	b.SetCollapsed(true)
	s := NewVStack(a, b, c).SetSpacing(5)
	layoutRoot(t, s.Node(), 100, 100)

	assert.Equal(t, float32(15), c.Position().Y)
	assert.Equal(t, Size{}, b.ArrangedSize())
}

func TestStack_Wrap(t *testing.T) {
	items := []*Node{sized("a", 40, 20), sized("b", 40, 20), sized("c", 40, 20)}
	s := NewHStack(items...).SetWrap(true)
	layoutRoot(t, s.Node(), 100, 200)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, StackLine{Start: 0, End: 2, Main: 80, Cross: 20}, lines[0])
	assert.Equal(t, StackLine{Start: 2, End: 3, Main: 40, Cross: 20}, lines[1])

	assert.Equal(t, Point{X: 40, Y: 0}, items[1].Position())
	assert.Equal(t, Point{X: 0, Y: 20}, items[2].Position())
}

func TestStack_WrapKeepsMeasuredLinesWhenArrangedNarrower(t *testing.T) {
	items := []*Node{sized("a", 40, 20), sized("b", 40, 20), sized("c", 40, 20)}
	s := NewHStack(items...).SetWrap(true)

	d := s.Node().Measure(Size{Width: 100, Height: 200}, true)
	require.Equal(t, float32(40), d.Height)
	s.Node().Arrange(Rect{Width: 60, Height: d.Height})

	require.Len(t, s.Lines(), 2)
	assert.Equal(t, Point{X: 40, Y: 0}, items[1].Position())
	assert.Equal(t, Point{X: 0, Y: 20}, items[2].Position())
	for _, it := range items {
		b := it.Bounds()
		assert.LessOrEqual(t, b.Y+b.Height, d.Height, it.Name())
	}
}

func TestStack_WrapCases(t *testing.T) {
	cases := []struct {
		name    string
		widths  []float32
		spacing float32
		lines   [][2]int
	}{
		{"oversized item gets own line", []float32{120, 30}, 0, [][2]int{{0, 1}, {1, 2}}},
		{"exact fit stays on line", []float32{50, 50}, 0, [][2]int{{0, 2}}},
		{"spacing pushes to next line", []float32{50, 50}, 1, [][2]int{{0, 1}, {1, 2}}},
		{"all fit", []float32{10, 10, 10}, 5, [][2]int{{0, 3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewHStack().SetWrap(true).SetSpacing(tc.spacing)
			for _, w := range tc.widths {
				s.Add(sized("item", w, 10))
			}
			s.Node().Measure(Size{Width: 100, Height: Unconstrained}, true)

			var got [][2]int
			for _, l := range s.Lines() {
				got = append(got, [2]int{l.Start, l.End})
			}
			assert.Equal(t, tc.lines, got)
		})
	}
}

func TestStack_WrapSpacingBetweenLines(t *testing.T) {
	items := []*Node{sized("a", 60, 10), sized("b", 60, 30)}
	s := NewHStack(items...).SetWrap(true).SetSpacing(4)

	d := s.Node().Measure(Size{Width: 100, Height: Unconstrained}, true)
	assert.Equal(t, Size{Width: 60, Height: 44}, d)
}
