package tw

// BreakpointConfig is the minimum viewport width, in pixels, at which each
// responsive prefix starts to apply. Unprefixed classes apply at any width.
type BreakpointConfig struct {
	SM  float32
	MD  float32
	LG  float32
	XL  float32
	XXL float32 // the 2xl: prefix
}

// DefaultBreakpoints returns 640/768/1024/1280/1536, the Tailwind defaults.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{SM: 640, MD: 768, LG: 1024, XL: 1280, XXL: 1536}
}

// MinWidth returns the width at which bp starts to apply; 0 for the base.
func (c BreakpointConfig) MinWidth(bp Breakpoint) float32 {
	switch bp {
	case BreakpointSM:
		return c.SM
	case BreakpointMD:
		return c.MD
	case BreakpointLG:
		return c.LG
	case BreakpointXL:
		return c.XL
	case Breakpoint2XL:
		return c.XXL
	}
	return 0
}

// ActiveBreakpoint is the largest breakpoint whose minimum width is <= width.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	for bp := Breakpoint2XL; bp > BreakpointBase; bp-- {
		if width >= c.MinWidth(bp) {
			return bp
		}
	}
	return BreakpointBase
}

// ResolveForWidth layers each breakpoint's style over the base, smallest
// first, stopping at the one active for width. Later layers only override
// the properties they set.
func (s *Styles) ResolveForWidth(width float32, config BreakpointConfig) Style {
	result := s.Base
	active := config.ActiveBreakpoint(width)

	for bp := BreakpointSM; bp <= active; bp++ {
		result.Merge(*s.target(bp))
	}
	return result
}

// target returns the bucket a class with the given breakpoint writes to.
func (s *Styles) target(bp Breakpoint) *Style {
	switch bp {
	case BreakpointSM:
		return &s.SM
	case BreakpointMD:
		return &s.MD
	case BreakpointLG:
		return &s.LG
	case BreakpointXL:
		return &s.XL
	case Breakpoint2XL:
		return &s.XXL
	default:
		return &s.Base
	}
}
