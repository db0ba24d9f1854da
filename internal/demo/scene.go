// Package demo assembles the sample scene shared by the lattice CLI and the
// explorer example: a header grid above a virtualized list and a virtualized
// tree, with a status line.
package demo

import (
	"fmt"

	"github.com/agiangrant/lattice/retained"
	"github.com/agiangrant/lattice/track"
	"github.com/agiangrant/lattice/tw"
	"github.com/agiangrant/lattice/virtual"
)

// Folder is an in-memory tree node.
type Folder struct {
	Name  string
	Items []any
}

// Options configures the scene contents.
type Options struct {
	// Items is the number of list rows.
	Items int
	// Roots are the top-level tree items. Nil uses Synthetic(12, 40).
	Roots []any
	// ExpandLevel expands the tree down to this depth.
	ExpandLevel int
	// RowExtent overrides the configured row extent per tree item.
	RowExtent func(item any) float32
}

// DefaultOptions returns the scene used by `lattice dump`.
func DefaultOptions() Options {
	return Options{Items: 500, ExpandLevel: 3}
}

// Scene is the assembled sample layout.
type Scene struct {
	Host   *retained.Host
	Root   *retained.Node
	Header *retained.Grid
	List   *retained.ListView
	Tree   *retained.TreeView
	Status *retained.Text
}

// Synthetic builds a project-like tree of packages each holding files.
func Synthetic(packages, files int) *Folder {
	root := &Folder{Name: "project"}
	for p := 0; p < packages; p++ {
		pkg := &Folder{Name: fmt.Sprintf("pkg%02d", p)}
		for f := 0; f < files; f++ {
			pkg.Items = append(pkg.Items, &File{Path: fmt.Sprintf("pkg%02d/file%03d.go", p, f), Size: int64(f * 128)})
		}
		root.Items = append(root.Items, pkg)
	}
	root.Items = append(root.Items, &File{Path: "go.mod", Size: 96})
	return root
}

// New builds the scene and installs it in a Host.
func New(cfg retained.Config, opts Options) *Scene {
	if opts.Items < 0 {
		opts.Items = 0
	}
	if opts.Roots == nil {
		opts.Roots = []any{Synthetic(12, 40)}
	}

	s := &Scene{Host: retained.NewHost(cfg)}

	title := tw.Apply(retained.NewText("lattice").Node(), "px-2 py-1")
	subtitle := tw.Apply(retained.NewText("layout and virtualization demo").Node(), "px-2 py-1 justify-center")
	count := tw.Apply(retained.NewText(fmt.Sprintf("%d items", opts.Items)).Node(), "px-2 py-1")
	s.Header = retained.NewGrid([]track.Track{track.Auto(), track.Star(), track.Auto()}, nil).
		Add(title, 0, 0).
		Add(subtitle, 0, 1).
		Add(count, 0, 2)
	s.Header.Node().SetName("header")

	s.List = retained.NewListView(cfg, listItems(opts.Items), retained.ItemTemplate{
		New: func() *retained.Node {
			return tw.Apply(retained.NewText("").Node(), "px-2")
		},
		Bind: func(n *retained.Node, item any, index int) {
			retained.TextOf(n).SetText(item.(string))
		},
	})

	s.Tree = retained.NewTreeView(cfg, retained.TreeTemplate{
		New: func() *retained.Node {
			return tw.Apply(retained.NewText("").Node(), "px-1")
		},
		Bind: func(n *retained.Node, row *virtual.TreeRowNode) {
			retained.TextOf(n).SetText(RowLabel(row))
		},
	})
	Register(s.Tree.Tree())
	if opts.RowExtent != nil {
		s.Tree.Tree().SetRowExtentFunc(opts.RowExtent)
	}
	s.Tree.SetRoots(opts.Roots...)
	if opts.ExpandLevel > 0 {
		s.Tree.ExpandToLevel(opts.ExpandLevel)
	}

	s.Status = retained.NewText("")
	tw.Apply(s.Status.Node(), "px-2 py-1")

	listPane := retained.NewBorder(retained.Uniform(1), s.List.Node())
	treePane := retained.NewBorder(retained.Uniform(1), s.Tree.Node())
	tw.Apply(listPane.Node(), "mr-1")
	tw.Apply(treePane.Node(), "ml-1")

	root := retained.NewGrid(
		[]track.Track{track.Stars(1), track.Stars(2)},
		[]track.Track{track.Auto(), track.Star(), track.Auto()},
	).
		AddSpan(s.Header.Node(), 0, 0, 1, 2).
		Add(listPane.Node(), 1, 0).
		Add(treePane.Node(), 1, 1).
		AddSpan(s.Status.Node(), 2, 0, 1, 2)
	s.Root = root.Node().SetName("scene")

	s.Host.SetRoot(s.Root)
	return s
}

// Layout runs a layout pass and refreshes the status line to match it.
func (s *Scene) Layout(size retained.Size) bool {
	changed := s.Host.Layout(size)
	s.Status.SetText(s.StatusLine())
	return s.Host.Layout(size) || changed
}

// StatusLine summarizes what is currently realized.
func (s *Scene) StatusLine() string {
	r := s.List.VisibleRange()
	list := "list empty"
	if !r.Empty() {
		list = fmt.Sprintf("list %d-%d of %d", r.First, r.Last, s.List.Source().Len())
	}
	return fmt.Sprintf("%s  tree %d rows, %d realized", list, len(s.Tree.Tree().Flatten()), len(s.Tree.VisibleRows()))
}

// Scroll moves both virtualized panes by dy.
func (s *Scene) Scroll(dy float32) {
	s.List.Scroller().ScrollBy(0, dy)
	s.Tree.Scroller().ScrollBy(0, dy)
}

// Register teaches a flattener the demo's item types.
func Register(t *virtual.Tree) {
	virtual.RegisterType(t, func(f *Folder) []any { return f.Items })
	virtual.RegisterType(t, func(d *Dir) []any { return d.Children() })
}

// RowLabel renders a tree row as "+ name" for collapsed containers,
// "- name" for expanded ones, and the bare name for files.
func RowLabel(row *virtual.TreeRowNode) string {
	var name string
	container := true
	switch v := row.Item.(type) {
	case *Folder:
		name = v.Name
	case *Dir:
		name = v.Name()
	case *File:
		name, container = v.Name(), false
	default:
		name, container = fmt.Sprint(v), false
	}
	if !container {
		return "  " + name
	}
	if row.Expanded {
		return "- " + name
	}
	return "+ " + name
}

func listItems(n int) retained.SliceSource[string] {
	items := make(retained.SliceSource[string], n)
	for i := range items {
		items[i] = fmt.Sprintf("item %03d", i)
	}
	return items
}
