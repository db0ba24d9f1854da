package tw

import (
	"testing"

	"github.com/agiangrant/lattice/retained"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_PositionsNode(t *testing.T) {
	child := Apply(retained.NewNode("badge"), "w-32 h-[40px] justify-end self-center mr-2")
	root := Apply(retained.NewPanel(child), "p-4")

	host := retained.NewHost(retained.DefaultConfig())
	host.SetRoot(root)
	require.True(t, host.Layout(retained.Size{Width: 200, Height: 200}))

	// Content box is 168 wide; the badge ends 8px short of it.
	assert.Equal(t, retained.Rect{X: 168 - 8 - 128, Y: 84 - 20, Width: 128, Height: 40}, child.Bounds())
	assert.Equal(t, float32(16+32), child.AbsoluteBounds().X)
}

func TestApply_KeepsUnsetProperties(t *testing.T) {
	n := retained.NewNode("n").
		SetPadding(retained.Thickness{Left: 3, Top: 3, Right: 3, Bottom: 3}).
		SetMinSize(retained.Size{Width: 10, Height: 10}).
		SetAlignment(retained.AlignStart, retained.AlignEnd)

	Apply(n, "pt-1 min-h-5 self-center")

	assert.Equal(t, retained.Thickness{Left: 3, Top: 4, Right: 3, Bottom: 3}, n.Padding())
	assert.Equal(t, retained.Size{Width: 10, Height: 20}, n.MinSize())
	assert.Equal(t, retained.AlignStart, n.HorizontalAlignment())
	assert.Equal(t, retained.AlignCenter, n.VerticalAlignment())
	_, hasW, _, hasH := n.ExplicitSize()
	assert.False(t, hasW)
	assert.False(t, hasH)
}

func TestApplyForWidth(t *testing.T) {
	n := ApplyForWidth(retained.NewNode("n"), "p-2 md:p-8 lg:hidden", 800)
	assert.Equal(t, float32(32), n.Padding().Left)
	assert.False(t, n.Collapsed())

	ApplyForWidth(n, "p-2 md:p-8 lg:hidden", 1200)
	assert.True(t, n.Collapsed())
}

func TestApply_RecycledNodesKeepTemplateStyle(t *testing.T) {
	r := retained.NewRealizer(retained.ItemTemplate{
		New: func() *retained.Node { return Apply(retained.NewNode("row"), "px-3 h-8") },
		Bind: func(n *retained.Node, item any, index int) {
			if item == "wide" {
				n.SetPadding(retained.Thickness{})
			}
		},
	}, 4)
	parent := retained.NewNode("list")

	r.Begin()
	r.Realize("wide", "wide", 0)
	r.End(parent)
	r.Begin()
	r.End(parent)

	r.Begin()
	n := r.Realize("plain", "plain", 0)
	r.End(parent)

	assert.Equal(t, float32(12), n.Padding().Left)
	_, _, h, hasH := n.ExplicitSize()
	assert.True(t, hasH)
	assert.Equal(t, float32(32), h)
}

func TestApplyStyle_Nil(t *testing.T) {
	assert.Nil(t, ApplyStyle(nil, Parse("p-4").Base))
}
