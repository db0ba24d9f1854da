package tw

import (
	"strconv"
	"strings"

	"github.com/agiangrant/lattice/retained"
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Breakpoint     Breakpoint
	Negative       bool            // leading "-", as in -mt-2
	Unsupported    bool            // carries a variant that has no layout meaning (hover:, dark:)
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like h-[40px]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "p", "min-h"
	Value    string // e.g., "40px", "2.5rem"
}

// edge selects which sides a spacing utility writes.
type edge uint8

const (
	edgeTop edge = 1 << iota
	edgeRight
	edgeBottom
	edgeLeft

	edgeX   = edgeLeft | edgeRight
	edgeY   = edgeTop | edgeBottom
	edgeAll = edgeX | edgeY
)

var paddingEdges = map[string]edge{
	"p": edgeAll, "px": edgeX, "py": edgeY,
	"pt": edgeTop, "pr": edgeRight, "pb": edgeBottom, "pl": edgeLeft,
}

var marginEdges = map[string]edge{
	"m": edgeAll, "mx": edgeX, "my": edgeY,
	"mt": edgeTop, "mr": edgeRight, "mb": edgeBottom, "ml": edgeLeft,
}

// keywordClasses holds the utilities that take no value.
var keywordClasses = map[string]Style{
	"justify-start":   {HAlign: alignPtr(retained.AlignStart)},
	"justify-center":  {HAlign: alignPtr(retained.AlignCenter)},
	"justify-end":     {HAlign: alignPtr(retained.AlignEnd)},
	"justify-stretch": {HAlign: alignPtr(retained.AlignStretch)},
	"self-start":      {VAlign: alignPtr(retained.AlignStart)},
	"self-center":     {VAlign: alignPtr(retained.AlignCenter)},
	"self-end":        {VAlign: alignPtr(retained.AlignEnd)},
	"self-stretch":    {VAlign: alignPtr(retained.AlignStretch)},
	"hidden":          {Collapsed: boolPtr(true)},
	"block":           {Collapsed: boolPtr(false)},
}

// Parse parses a class string with the registered configuration.
// Example: "p-4 mx-2 w-32 h-[40px] self-center md:p-8"
func Parse(classStr string) Styles {
	return GetConfig().Parse(classStr)
}

// Parse parses a class string and returns the styles per breakpoint.
// Unknown classes are silently ignored, like Tailwind CSS.
func (c Config) Parse(classStr string) Styles {
	var styles Styles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			continue
		}

		var (
			partial Style
			ok      bool
		)
		if parsed.ArbitraryValue != nil {
			partial, ok = c.parseArbitraryValue(parsed.ArbitraryValue, parsed.Negative)
		} else {
			partial, ok = c.parseUtility(parsed.BaseClass, parsed.Negative)
		}
		if !ok {
			continue
		}

		styles.target(parsed.Breakpoint).Merge(partial)
	}

	return styles
}

// parseClass splits a class into variant modifiers and base utility
// "md:-mt-2" → ParsedClass{Breakpoint: MD, Negative: true, BaseClass: "mt-2"}
// "h-[40px]" → ParsedClass{ArbitraryValue: {Property: "h", Value: "40px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		BaseClass:  parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		default:
			pc.Unsupported = true
		}
	}

	if strings.HasPrefix(pc.BaseClass, "-") {
		pc.Negative = true
		pc.BaseClass = pc.BaseClass[1:]
	}

	// Check if base class is an arbitrary value: property-[value]
	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33px]" → ArbitraryValue{Property: "w", Value: "33px"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseUtility resolves a keyword class or a property-step class such as
// "min-w-12" on the spacing scale.
func (c Config) parseUtility(class string, negative bool) (Style, bool) {
	if !negative {
		if s, ok := keywordClasses[class]; ok {
			return s, true
		}
	}

	dash := strings.LastIndex(class, "-")
	if dash <= 0 {
		return Style{}, false
	}
	value := c.parseScale(class[dash+1:])
	if value == nil {
		return Style{}, false
	}
	return c.property(class[:dash], *value, negative)
}

func (c Config) parseArbitraryValue(arb *ArbitraryValue, negative bool) (Style, bool) {
	if arb == nil {
		return Style{}, false
	}
	value := c.parseDimension(arb.Value)
	if value == nil {
		return Style{}, false
	}
	return c.property(arb.Property, *value, negative)
}

// property builds the style for a sized property. Only margins may be negative.
func (c Config) property(name string, v float32, negative bool) (Style, bool) {
	var s Style

	if e, ok := marginEdges[name]; ok {
		if negative {
			v = -v
		}
		s.MarginTop, s.MarginRight, s.MarginBottom, s.MarginLeft = spread(e, v)
		return s, true
	}
	if negative || v < 0 {
		return Style{}, false
	}
	if e, ok := paddingEdges[name]; ok {
		s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft = spread(e, v)
		return s, true
	}

	switch name {
	case "w":
		s.Width = floatPtr(v)
	case "h":
		s.Height = floatPtr(v)
	case "size":
		s.Width, s.Height = floatPtr(v), floatPtr(v)
	case "min-w":
		s.MinWidth = floatPtr(v)
	case "min-h":
		s.MinHeight = floatPtr(v)
	case "max-w":
		s.MaxWidth = floatPtr(v)
	case "max-h":
		s.MaxHeight = floatPtr(v)
	default:
		return Style{}, false
	}
	return s, true
}

func spread(e edge, v float32) (top, right, bottom, left *float32) {
	if e&edgeTop != 0 {
		top = floatPtr(v)
	}
	if e&edgeRight != 0 {
		right = floatPtr(v)
	}
	if e&edgeBottom != 0 {
		bottom = floatPtr(v)
	}
	if e&edgeLeft != 0 {
		left = floatPtr(v)
	}
	return
}

// parseScale parses a step on the spacing scale: "4" → 4×Spacing, "0.5",
// and "px" for a single pixel.
func (c Config) parseScale(value string) *float32 {
	if value == "px" {
		return floatPtr(1)
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil
	}
	return floatPtr(float32(f) * c.Spacing)
}

// parseDimension parses arbitrary lengths. Plain numbers are pixels.
func (c Config) parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	numStr := value
	var multiplier float32 = 1.0

	if strings.HasSuffix(value, "px") {
		numStr = strings.TrimSuffix(value, "px")
	} else if strings.HasSuffix(value, "rem") {
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = c.RemSize
	}

	f, err := strconv.ParseFloat(numStr, 32)
	if err != nil {
		return nil
	}
	return floatPtr(float32(f) * multiplier)
}

func floatPtr(v float32) *float32 { return &v }

func boolPtr(v bool) *bool { return &v }

func alignPtr(a retained.Alignment) *retained.Alignment { return &a }
