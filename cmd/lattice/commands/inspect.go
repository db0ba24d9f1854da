package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agiangrant/lattice/internal/demo"
	"github.com/agiangrant/lattice/retained"
	"github.com/mattn/go-runewidth"
)

// nameColumn is the display width reserved for the indented node names.
const nameColumn = 40

// Inspect implements the 'lattice inspect' command
func Inspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	sf := addSceneFlags(fs)
	depth := fs.Int("depth", 0, "Maximum depth to print (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := sf.load()
	if err != nil {
		return err
	}

	scene := demo.New(cfg, demo.DefaultOptions())
	scene.Layout(sf.size())
	writeTree(stdout, scene.Root, *depth)
	return nil
}

// writeTree prints one line per arranged node: its indented label followed
// by its absolute bounds. Collapsed nodes are skipped.
func writeTree(w io.Writer, root *retained.Node, maxDepth int) {
	var walk func(n *retained.Node, depth int)
	walk = func(n *retained.Node, depth int) {
		if n.Collapsed() || (maxDepth > 0 && depth >= maxDepth) {
			return
		}
		label := strings.Repeat("  ", depth) + nodeLabel(n)
		label = runewidth.Truncate(label, nameColumn-1, "…")
		b := n.AbsoluteBounds()
		fmt.Fprintf(w, "%s %7.1f %7.1f %7.1f x %.1f\n",
			runewidth.FillRight(label, nameColumn), b.X, b.Y, b.Width, b.Height)
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	if root != nil {
		walk(root, 0)
	}
}

func nodeLabel(n *retained.Node) string {
	if t := retained.TextOf(n); t != nil {
		return fmt.Sprintf("%s %q", n.Name(), t.Text())
	}
	return n.Name()
}
