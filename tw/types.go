package tw

import "github.com/agiangrant/lattice/retained"

// Breakpoint identifies a responsive prefix. Values are ordered from the
// unprefixed base up to 2xl.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
	Breakpoint2XL
)

// Style holds the box-model properties set by a class string. Nil fields are
// left untouched when the style is applied to a node.
type Style struct {
	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32
	MarginTop     *float32
	MarginRight   *float32
	MarginBottom  *float32
	MarginLeft    *float32

	// Sizing
	Width     *float32
	Height    *float32
	MinWidth  *float32
	MinHeight *float32
	MaxWidth  *float32
	MaxHeight *float32

	// Alignment within the parent slot
	HAlign *retained.Alignment // justify-*
	VAlign *retained.Alignment // self-*

	Collapsed *bool // hidden / block
}

// Styles represents a parsed class string organized by breakpoint
type Styles struct {
	// Base styles (always apply)
	Base Style

	// Responsive variants (apply at different breakpoints)
	SM  Style
	MD  Style
	LG  Style
	XL  Style
	XXL Style
}

// Config controls how utility values map to pixels.
type Config struct {
	Spacing     float32 // one step of the spacing scale, p-1 = Spacing px
	RemSize     float32 // pixels per rem in arbitrary values
	Breakpoints BreakpointConfig
}

// DefaultConfig returns the Tailwind defaults: a 4px spacing scale, 16px rem.
func DefaultConfig() Config {
	return Config{
		Spacing:     4,
		RemSize:     16,
		Breakpoints: DefaultBreakpoints(),
	}
}

// registeredConfig holds the consumer's configuration.
// If nil, falls back to DefaultConfig.
var registeredConfig *Config

// SetConfig registers the configuration used by Parse and Apply.
// This should be called at app startup before any parsing occurs.
func SetConfig(config Config) {
	registeredConfig = &config
}

// GetConfig returns the registered configuration or the defaults.
func GetConfig() Config {
	if registeredConfig != nil {
		return *registeredConfig
	}
	return DefaultConfig()
}

// Merge copies the non-nil fields of p into s. Later values win.
func (s *Style) Merge(p Style) {
	mergeFloat(&s.PaddingTop, p.PaddingTop)
	mergeFloat(&s.PaddingRight, p.PaddingRight)
	mergeFloat(&s.PaddingBottom, p.PaddingBottom)
	mergeFloat(&s.PaddingLeft, p.PaddingLeft)
	mergeFloat(&s.MarginTop, p.MarginTop)
	mergeFloat(&s.MarginRight, p.MarginRight)
	mergeFloat(&s.MarginBottom, p.MarginBottom)
	mergeFloat(&s.MarginLeft, p.MarginLeft)
	mergeFloat(&s.Width, p.Width)
	mergeFloat(&s.Height, p.Height)
	mergeFloat(&s.MinWidth, p.MinWidth)
	mergeFloat(&s.MinHeight, p.MinHeight)
	mergeFloat(&s.MaxWidth, p.MaxWidth)
	mergeFloat(&s.MaxHeight, p.MaxHeight)
	if p.HAlign != nil {
		s.HAlign = p.HAlign
	}
	if p.VAlign != nil {
		s.VAlign = p.VAlign
	}
	if p.Collapsed != nil {
		s.Collapsed = p.Collapsed
	}
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

func mergeFloat(dst **float32, src *float32) {
	if src != nil {
		*dst = src
	}
}
