// Package lattice is a retained-mode layout and virtualization engine.
//
// A UI is a tree of retained.Node values. Each layout pass measures the tree
// bottom-up and arranges it top-down; nodes cache their results and only
// dirty subtrees are revisited. Containers cover the usual shapes: Grid with
// pixel, auto and star tracks (solved by package track), Stack with optional
// wrapping, Border, ScrollView, and the virtualizing ListView, TableView and
// TreeView, which realize only the items intersecting their viewport and
// recycle the nodes that scroll out (windowing in package virtual).
//
// Typical use:
//
//	cfg, err := lattice.LoadConfig("lattice.toml")
//	host := lattice.NewHost(cfg)
//	host.SetRoot(root)
//	host.Layout(retained.Size{Width: 800, Height: 600})
//	host.DispatchWheel(p, 0, 40)
//	host.Tick(dt)
//
// Package tw applies Tailwind-style box-model classes ("p-4 w-32
// self-center") to nodes.
package lattice
