// Package debugdraw rasterizes an arranged node tree so layout results can be
// inspected without a renderer. Each node is outlined at its absolute bounds;
// descendants of a scroll viewport are clipped to its content box.
package debugdraw

import (
	"fmt"
	"image"
	"image/color"

	"github.com/agiangrant/lattice/retained"
	"github.com/fogleman/gg"
)

// Options controls the rendering.
type Options struct {
	Background color.Color
	// Palette colors outlines by depth, cycling when the tree is deeper.
	Palette   []color.Color
	LineWidth float64
	// Labels draws each node's name (or its text) in the top-left corner.
	Labels bool
	// Fill shades each node's box with a translucent version of its outline.
	Fill bool
}

// DefaultOptions returns a light background with a four-color palette.
func DefaultOptions() Options {
	return Options{
		Background: color.White,
		Palette: []color.Color{
			color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
			color.RGBA{R: 0x1d, G: 0x72, B: 0xd8, A: 0xff},
			color.RGBA{R: 0x2a, G: 0x9d, B: 0x47, A: 0xff},
			color.RGBA{R: 0xd8, G: 0x6a, B: 0x1d, A: 0xff},
		},
		LineWidth: 1,
		Labels:    true,
	}
}

// labelHeight is the line height of gg's built-in 7x13 face.
const labelHeight = 13

type renderer struct {
	ctx  *gg.Context
	opts Options
}

// Render draws root and its arranged descendants onto a width×height image.
func Render(root *retained.Node, width, height int, opts Options) image.Image {
	if opts.Background == nil {
		opts.Background = color.White
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultOptions().Palette
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}

	r := &renderer{ctx: gg.NewContext(width, height), opts: opts}
	r.ctx.SetColor(opts.Background)
	r.ctx.Clear()

	if root != nil {
		screen := retained.Rect{Width: float32(width), Height: float32(height)}
		r.drawNode(root, screen, 0)
	}
	return r.ctx.Image()
}

// SavePNG renders the tree and writes it to path.
func SavePNG(path string, root *retained.Node, width, height int, opts Options) error {
	img := Render(root, width, height, opts)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// drawNode outlines n clipped to clip, then recurses. gg's clip mask is not
// restored by Pop, so clipping is done on the rectangles themselves.
func (r *renderer) drawNode(n *retained.Node, clip retained.Rect, depth int) {
	if n.Collapsed() {
		return
	}
	abs := n.AbsoluteBounds()
	visible, ok := intersect(abs, clip)

	if ok {
		c := r.opts.Palette[depth%len(r.opts.Palette)]
		if r.opts.Fill {
			cr, cg, cb, _ := c.RGBA()
			r.ctx.SetRGBA(float64(cr)/0xffff, float64(cg)/0xffff, float64(cb)/0xffff, 0.08)
			r.ctx.DrawRectangle(float64(visible.X), float64(visible.Y), float64(visible.Width), float64(visible.Height))
			r.ctx.Fill()
		}
		r.ctx.SetColor(c)
		r.ctx.SetLineWidth(r.opts.LineWidth)
		// Half-pixel inset keeps 1px strokes crisp and inside the box.
		r.ctx.DrawRectangle(float64(visible.X)+0.5, float64(visible.Y)+0.5,
			float64(visible.Width)-1, float64(visible.Height)-1)
		r.ctx.Stroke()

		if r.opts.Labels && visible.Height >= labelHeight {
			r.drawLabel(n, abs, visible)
		}
	}

	if n.Scroller() != nil {
		content := abs.Deflate(n.Padding())
		var inside bool
		if clip, inside = intersect(content, clip); !inside {
			return
		}
	}
	for _, child := range n.Children() {
		r.drawNode(child, clip, depth+1)
	}
}

func (r *renderer) drawLabel(n *retained.Node, abs, visible retained.Rect) {
	label := n.Name()
	if t := retained.TextOf(n); t != nil {
		label = t.Text()
	}
	if label == "" {
		return
	}
	// Skip labels whose anchor was clipped away.
	if abs.Y < visible.Y || abs.X < visible.X {
		return
	}
	w, _ := r.ctx.MeasureString(label)
	if w+4 > float64(visible.Width) {
		return
	}
	r.ctx.DrawString(label, float64(abs.X)+2, float64(abs.Y)+labelHeight-2)
}

func intersect(a, b retained.Rect) (retained.Rect, bool) {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.Width, b.X+b.Width), min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return retained.Rect{}, false
	}
	return retained.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}
