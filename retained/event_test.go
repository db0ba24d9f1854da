package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wheelScene(t *testing.T) (*Host, *ScrollView, *Node, *Node) {
	t.Helper()
	sv, items := scrollingList(DefaultConfig(), 10, 50)
	sv.Node().SetName("sv")
	stack := sv.Content().SetName("stack")
	items[0].SetName("item")
	host := layoutRoot(t, sv.Node(), 100, 100)
	return host, sv, stack, items[0]
}

func TestWheelEvent_PropagationOrder(t *testing.T) {
	host, sv, stack, item := wheelScene(t)

	var trace []string
	record := func(e *WheelEvent) {
		trace = append(trace, e.Phase().String()+":"+e.CurrentTarget().Name())
		assert.Same(t, item, e.Target())
	}
	sv.Node().OnWheelCapture(record).OnWheel(record)
	stack.OnWheel(record)
	item.OnWheelCapture(record).OnWheel(record)

	assert.Same(t, sv.Node(), host.DispatchWheel(Point{X: 10, Y: 10}, 0, 30))
	assert.Equal(t, []string{
		"capture:sv",
		"target:item",
		"target:item",
		"bubble:stack",
		"bubble:sv",
	}, trace)
}

func TestWheelEvent_PreventDefaultSuppressesScroll(t *testing.T) {
	host, sv, stack, _ := wheelScene(t)
	stack.OnWheel(func(e *WheelEvent) { e.PreventDefault() })

	assert.Nil(t, host.DispatchWheel(Point{X: 10, Y: 10}, 0, 30))
	assert.Equal(t, float32(0), sv.Scroller().Offset().Y)
	assert.False(t, sv.Scroller().IsScrolling())
}

func TestWheelEvent_StopPropagationStillScrolls(t *testing.T) {
	host, sv, stack, item := wheelScene(t)
	reached := false
	item.OnWheel(func(e *WheelEvent) { e.StopPropagation() })
	stack.OnWheel(func(e *WheelEvent) { reached = true })

	assert.Same(t, sv.Node(), host.DispatchWheel(Point{X: 10, Y: 10}, 0, 30))
	assert.False(t, reached)
	assert.Equal(t, float32(30), sv.Scroller().Offset().Y)
}

func TestWheelEvent_HandlersMayRewriteDeltas(t *testing.T) {
	host, sv, _, _ := wheelScene(t)
	var local Point
	sv.Node().OnWheelCapture(func(e *WheelEvent) {
		e.DeltaY *= 2
		local = Point{X: e.LocalX, Y: e.LocalY}
	})

	require.NotNil(t, host.DispatchWheel(Point{X: 10, Y: 20}, 0, 30))
	assert.Equal(t, float32(60), sv.Scroller().Offset().Y)
	assert.Equal(t, Point{X: 10, Y: 20}, local)
}
