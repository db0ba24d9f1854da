package retained

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return ease.Linear
	case "ease-in":
		return ease.InQuad
	case "ease-out":
		return ease.OutQuad
	case "ease", "ease-in-out":
		return ease.InOutQuad
	case "cubic":
		return ease.InOutCubic
	case "out-cubic":
		return ease.OutCubic
	case "sine":
		return ease.InOutSine
	case "expo":
		return ease.OutExpo
	case "back":
		return ease.OutBack
	case "elastic":
		return ease.OutElastic
	case "bounce":
		return ease.OutBounce
	default:
		return nil
	}
}

// scrollAnim holds active scroll-to tweens for the X and Y offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

func newScrollAnim(from, to Point, duration float32, fn ease.TweenFunc) *scrollAnim {
	return &scrollAnim{
		tweenX: gween.New(from.X, to.X, duration, fn),
		tweenY: gween.New(from.Y, to.Y, duration, fn),
	}
}

// step advances both tweens by dt seconds and returns the new offset.
func (a *scrollAnim) step(current Point, dt float32) (Point, bool) {
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		current.X = val
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		current.Y = val
		a.doneY = done
	}
	return current, a.doneX && a.doneY
}
