package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/lattice/internal/debugdraw"
	"github.com/agiangrant/lattice/internal/demo"
)

// Dump implements the 'lattice dump' command
func Dump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	sf := addSceneFlags(fs)
	out := fs.String("out", "layout.png", "Output PNG file")
	scroll := fs.Float64("scroll", 0, "Scroll both panes by this many pixels before rendering")
	labels := fs.Bool("labels", true, "Draw node names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := sf.load()
	if err != nil {
		return err
	}

	scene := demo.New(cfg, demo.DefaultOptions())
	size := sf.size()
	scene.Layout(size)
	if *scroll != 0 {
		scene.Scroll(float32(*scroll))
		scene.Layout(size)
	}

	opts := debugdraw.DefaultOptions()
	opts.Labels = *labels
	if err := debugdraw.SavePNG(*out, scene.Root, int(size.Width), int(size.Height), opts); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "  ✓ Wrote %s (%dx%d)\n", *out, int(size.Width), int(size.Height))
	fmt.Fprintf(stdout, "    %s\n", scene.StatusLine())
	return nil
}
