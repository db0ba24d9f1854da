package retained

import (
	"github.com/tanema/gween/ease"
)

// ScrollState is the interaction state of a scroll coordinator.
type ScrollState uint8

const (
	// ScrollIdle means no pointer or wheel interaction is in progress.
	ScrollIdle ScrollState = iota

	// ScrollScrolling means the user is actively scrolling. Containers may
	// defer expensive work (e.g. image loads) until the state returns to idle.
	ScrollScrolling
)

func (s ScrollState) String() string {
	if s == ScrollScrolling {
		return "scrolling"
	}
	return "idle"
}

// ScrollCoordinator owns the scroll offsets of one viewport and keeps them
// within [0, max(0, content-viewport)] on each axis.
//
// The owning container reports extents through SetExtents after every
// arrange; offsets are re-clamped whenever extents change. Disabled axes are
// pinned at zero.
type ScrollCoordinator struct {
	offset   Point
	content  Size
	viewport Size

	horizontal bool
	vertical   bool

	// Factor scales raw wheel deltas passed to HandleScroll.
	Factor float32

	duration float32 // Seconds
	easing   ease.TweenFunc
	anim     *scrollAnim

	state    ScrollState
	onChange []func(Point)
	onState  []func(ScrollState)
}

// NewScrollCoordinator creates a vertically scrolling coordinator using the
// scroll settings of cfg.
func NewScrollCoordinator(cfg Config) *ScrollCoordinator {
	easing := EasingByName(cfg.Scroll.Easing)
	if easing == nil {
		easing = ease.OutCubic
	}
	return &ScrollCoordinator{
		vertical: true,
		Factor:   cfg.Scroll.Factor,
		duration: float32(cfg.Scroll.AnimationMS) / 1000,
		easing:   easing,
	}
}

// SetAxes enables or disables scrolling per axis.
func (s *ScrollCoordinator) SetAxes(horizontal, vertical bool) {
	s.horizontal, s.vertical = horizontal, vertical
	s.setOffset(s.clamp(s.offset))
}

// Axes reports which axes scroll.
func (s *ScrollCoordinator) Axes() (horizontal, vertical bool) {
	return s.horizontal, s.vertical
}

// Offset returns the current scroll offset.
func (s *ScrollCoordinator) Offset() Point { return s.offset }

// ContentSize returns the last reported content extent.
func (s *ScrollCoordinator) ContentSize() Size { return s.content }

// ViewportSize returns the last reported viewport extent.
func (s *ScrollCoordinator) ViewportSize() Size { return s.viewport }

// State returns the interaction state.
func (s *ScrollCoordinator) State() ScrollState { return s.state }

// IsScrolling reports whether a scroll interaction is in progress.
func (s *ScrollCoordinator) IsScrolling() bool { return s.state == ScrollScrolling }

// IsAnimating reports whether an AnimateTo is in flight.
func (s *ScrollCoordinator) IsAnimating() bool { return s.anim != nil }

// OnChange registers fn to be called after the offset changes.
func (s *ScrollCoordinator) OnChange(fn func(offset Point)) {
	s.onChange = append(s.onChange, fn)
}

// OnStateChange registers fn to be called when the interaction state changes.
func (s *ScrollCoordinator) OnStateChange(fn func(ScrollState)) {
	s.onState = append(s.onState, fn)
}

// MaxOffset returns the largest valid offset on each axis.
func (s *ScrollCoordinator) MaxOffset() Point {
	var m Point
	if s.horizontal {
		m.X = maxf(0, s.content.Width-s.viewport.Width)
	}
	if s.vertical {
		m.Y = maxf(0, s.content.Height-s.viewport.Height)
	}
	return m
}

func (s *ScrollCoordinator) clamp(p Point) Point {
	m := s.MaxOffset()
	return Point{X: clampf(p.X, 0, m.X), Y: clampf(p.Y, 0, m.Y)}
}

func (s *ScrollCoordinator) setOffset(p Point) bool {
	if p == s.offset {
		return false
	}
	s.offset = p
	for _, fn := range s.onChange {
		fn(p)
	}
	return true
}

// SetExtents reports new content and viewport extents and re-clamps the offset.
func (s *ScrollCoordinator) SetExtents(content, viewport Size) {
	if content.Width < 0 {
		content.Width = 0
	}
	if content.Height < 0 {
		content.Height = 0
	}
	s.content = content
	s.viewport = viewport
	s.setOffset(s.clamp(s.offset))
}

// HandleScroll applies a wheel or drag delta scaled by Factor. It cancels
// any running animation and reports whether the offset changed.
func (s *ScrollCoordinator) HandleScroll(dx, dy float32) bool {
	s.anim = nil
	factor := s.Factor
	if factor == 0 {
		factor = 1
	}
	next := s.offset
	if s.horizontal {
		next.X += dx * factor
	}
	if s.vertical {
		next.Y += dy * factor
	}
	return s.setOffset(s.clamp(next))
}

// ScrollTo jumps to an offset, clamped into range.
func (s *ScrollCoordinator) ScrollTo(x, y float32) bool {
	s.anim = nil
	return s.setOffset(s.clamp(Point{X: x, Y: y}))
}

// ScrollBy moves the offset by an unscaled delta.
func (s *ScrollCoordinator) ScrollBy(dx, dy float32) bool {
	return s.ScrollTo(s.offset.X+dx, s.offset.Y+dy)
}

// AnimateTo tweens the offset to the clamped target over the configured
// duration. Advance it with Update.
func (s *ScrollCoordinator) AnimateTo(x, y float32) {
	target := s.clamp(Point{X: x, Y: y})
	if target == s.offset {
		s.anim = nil
		return
	}
	if s.duration <= 0 {
		s.ScrollTo(target.X, target.Y)
		return
	}
	s.anim = newScrollAnim(s.offset, target, s.duration, s.easing)
}

// Update advances a running animation by dt seconds. It reports whether an
// animation is still in flight afterwards.
func (s *ScrollCoordinator) Update(dt float32) bool {
	if s.anim == nil {
		return false
	}
	next, done := s.anim.step(s.offset, dt)
	if done {
		s.anim = nil
	}
	s.setOffset(s.clamp(next))
	return s.anim != nil
}

// BeginInteraction enters the scrolling state.
func (s *ScrollCoordinator) BeginInteraction() {
	s.setState(ScrollScrolling)
}

// EndInteraction returns to the idle state.
func (s *ScrollCoordinator) EndInteraction() {
	s.setState(ScrollIdle)
}

func (s *ScrollCoordinator) setState(st ScrollState) {
	if s.state == st {
		return
	}
	s.state = st
	for _, fn := range s.onState {
		fn(st)
	}
}

// ToContent converts a viewport point to content space.
func (s *ScrollCoordinator) ToContent(p Point) Point {
	return Point{X: p.X + s.offset.X, Y: p.Y + s.offset.Y}
}

// ToViewport converts a content point to viewport space.
func (s *ScrollCoordinator) ToViewport(p Point) Point {
	return Point{X: p.X - s.offset.X, Y: p.Y - s.offset.Y}
}

// ScrollIntoView scrolls the minimum distance that makes r (in content
// space) visible with padding on each side. When r is larger than the
// viewport its top/left edge wins. Reports whether the offset changed.
func (s *ScrollCoordinator) ScrollIntoView(r Rect, padding float32, animated bool) bool {
	x, needX := scrollTarget(s.offset.X, s.viewport.Width, r.X, r.Width, padding)
	y, needY := scrollTarget(s.offset.Y, s.viewport.Height, r.Y, r.Height, padding)
	if !s.horizontal {
		needX = false
	}
	if !s.vertical {
		needY = false
	}
	if !needX && !needY {
		return false
	}
	if !needX {
		x = s.offset.X
	}
	if !needY {
		y = s.offset.Y
	}
	if animated {
		s.AnimateTo(x, y)
		return s.anim != nil
	}
	return s.ScrollTo(x, y)
}

// scrollTarget calculates the offset needed to make [start, start+extent)
// visible on one axis. Returns the target offset and whether scrolling is needed.
func scrollTarget(current, viewport, start, extent, padding float32) (float32, bool) {
	end := start + extent

	visibleStart := current + padding
	visibleEnd := current + viewport - padding

	// Already fully visible
	if start >= visibleStart && end <= visibleEnd {
		return current, false
	}

	var target float32
	if end > visibleEnd {
		// Below the visible area - scroll to bring it up
		target = end - viewport + padding

		// Don't scroll so much that the start leaves the visible area
		if limit := start - padding; target > limit {
			target = limit
		}
	} else if start < visibleStart {
		// Above the visible area - scroll to bring it down
		target = start - padding
	} else {
		return current, false
	}

	if target < 0 {
		target = 0
	}
	return target, target != current
}
