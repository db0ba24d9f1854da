package retained

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text is a leaf that measures a string in fixed-size character cells.
//
// Widths come from runewidth, so wide (CJK) runes take two cells and
// combining marks none. With wrapping enabled and a finite available width,
// lines are broken greedily at spaces; a word wider than the line is kept
// whole and overflows.
type Text struct {
	node       *Node
	content    string
	cellWidth  float32
	lineHeight float32
	wrap       bool

	lines    []string
	defaults *textState
}

type textState struct {
	content    string
	cellWidth  float32
	lineHeight float32
	wrap       bool
}

// Default cell metrics for Text.
const (
	DefaultCellWidth  float32 = 8
	DefaultLineHeight float32 = 16
)

// NewText creates a text leaf.
func NewText(content string) *Text {
	t := &Text{
		node:       NewNode("text"),
		content:    content,
		cellWidth:  DefaultCellWidth,
		lineHeight: DefaultLineHeight,
	}
	t.node.leaf = t
	return t
}

// TextOf returns the Text leaf of n, or nil.
func TextOf(n *Node) *Text {
	if n == nil {
		return nil
	}
	t, _ := n.leaf.(*Text)
	return t
}

// Node returns the text's tree node.
func (t *Text) Node() *Node { return t.node }

// Text returns the content.
func (t *Text) Text() string { return t.content }

// SetText replaces the content.
func (t *Text) SetText(s string) *Text {
	if t.content != s {
		t.content = s
		t.node.InvalidateMeasure()
	}
	return t
}

// SetMetrics sets the cell width and line height in pixels.
func (t *Text) SetMetrics(cellWidth, lineHeight float32) *Text {
	if t.cellWidth != cellWidth || t.lineHeight != lineHeight {
		t.cellWidth, t.lineHeight = cellWidth, lineHeight
		t.node.InvalidateMeasure()
	}
	return t
}

// SetWrap enables word wrapping.
func (t *Text) SetWrap(wrap bool) *Text {
	if t.wrap != wrap {
		t.wrap = wrap
		t.node.InvalidateMeasure()
	}
	return t
}

func (t *Text) snapshotDefaults() {
	t.defaults = &textState{content: t.content, cellWidth: t.cellWidth, lineHeight: t.lineHeight, wrap: t.wrap}
}

func (t *Text) resetToDefaults() {
	if d := t.defaults; d != nil {
		t.content, t.cellWidth, t.lineHeight, t.wrap = d.content, d.cellWidth, d.lineHeight, d.wrap
	}
	t.lines = t.lines[:0]
}

// Lines returns the lines from the last measure.
func (t *Text) Lines() []string { return t.lines }

func (t *Text) MeasureContent(n *Node, available Size, dontStretch bool) Size {
	maxCells := -1
	if t.wrap && !IsUnconstrained(available.Width) && t.cellWidth > 0 {
		maxCells = int(available.Width / t.cellWidth)
		if maxCells < 1 {
			maxCells = 1
		}
	}

	t.lines = t.lines[:0]
	for _, para := range strings.Split(t.content, "\n") {
		if maxCells < 0 {
			t.lines = append(t.lines, para)
			continue
		}
		t.lines = append(t.lines, wrapLine(para, maxCells)...)
	}

	widest := 0
	for _, l := range t.lines {
		if w := runewidth.StringWidth(l); w > widest {
			widest = w
		}
	}
	if t.content == "" {
		return Size{}
	}
	return Size{
		Width:  float32(widest) * t.cellWidth,
		Height: float32(len(t.lines)) * t.lineHeight,
	}
}

// wrapLine breaks s into lines of at most maxCells cells at spaces.
func wrapLine(s string, maxCells int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var b strings.Builder
	used := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if used > 0 && used+1+ww > maxCells {
			lines = append(lines, b.String())
			b.Reset()
			used = 0
		}
		if used > 0 {
			b.WriteByte(' ')
			used++
		}
		b.WriteString(w)
		used += ww
	}
	return append(lines, b.String())
}
