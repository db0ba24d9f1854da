package retained

import (
	"github.com/agiangrant/lattice/track"
	"github.com/agiangrant/lattice/virtual"
)

// Column describes one table column.
type Column struct {
	Header string
	Track  track.Track
	Cell   ItemTemplate
}

// TableView is a virtualized list of rows whose cells share column tracks.
//
// Rows are windowed vertically like a ListView; columns are resolved by the
// track solver against the table width, with Auto columns sized from the
// header and the currently realized cells. The header row does not scroll.
type TableView struct {
	node    *Node
	header  *Node
	body    *Node
	cfg     Config
	columns []Column

	source      Source
	unsubscribe func()
	rowExtent   float32
	showHeader  bool

	realizer *Realizer
	scroller *ScrollCoordinator

	contrib  []track.Contribution
	colSolve track.Result
	index    virtual.Uniform
	window   virtual.Range
	viewport float32

	stale     bool
	measuring bool
}

// NewTableView creates a table over src with the given columns.
func NewTableView(cfg Config, src Source, columns []Column) *TableView {
	cfg = cfg.Validate()
	t := &TableView{
		node:       NewNode("table"),
		header:     NewNode("table-header"),
		body:       NewNode("table-body"),
		cfg:        cfg,
		columns:    columns,
		rowExtent:  cfg.Table.RowExtent,
		showHeader: true,
		scroller:   NewScrollCoordinator(cfg),
		window:     virtual.EmptyRange,
	}
	t.node.layout = &tableFrame{table: t}
	t.header.layout = &tableRow{table: t}
	t.body.layout = &tableBody{table: t}
	t.node.AddChild(t.header)
	t.node.AddChild(t.body)

	for _, c := range columns {
		t.header.AddChild(NewText(c.Header).Node())
	}

	t.realizer = NewRealizer(ItemTemplate{New: t.newRow, Bind: t.bindRow}, cfg.Virtualization.PoolLimit)
	t.scroller.OnChange(func(Point) {
		if !t.measuring {
			t.body.InvalidateMeasure()
		}
	})
	t.SetSource(src)
	return t
}

// Node returns the table's tree node.
func (t *TableView) Node() *Node { return t.node }

// Header returns the header row node.
func (t *TableView) Header() *Node { return t.header }

// Body returns the scrolling body node.
func (t *TableView) Body() *Node { return t.body }

// Scroller returns the body's scroll coordinator.
func (t *TableView) Scroller() *ScrollCoordinator { return t.scroller }

// Columns returns the column definitions.
func (t *TableView) Columns() []Column { return t.columns }

// ColumnResult returns the column solve from the last layout pass.
func (t *TableView) ColumnResult() track.Result { return t.colSolve }

// VisibleRange returns the realized row range.
func (t *TableView) VisibleRange() virtual.Range { return t.window }

// RowFor returns the live row node for index i, if realized.
func (t *TableView) RowFor(i int) (*Node, bool) { return t.realizer.Node(i) }

// SetRowExtent sets the uniform row height.
func (t *TableView) SetRowExtent(v float32) *TableView {
	if v > 0 && v != t.rowExtent {
		t.rowExtent = v
		t.node.InvalidateMeasure()
	}
	return t
}

// SetHeaderVisible shows or hides the header row.
func (t *TableView) SetHeaderVisible(v bool) *TableView {
	t.showHeader = v
	t.header.SetCollapsed(!v)
	return t
}

// SetSource replaces the row source.
func (t *TableView) SetSource(src Source) *TableView {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	t.source = src
	if obs, ok := src.(Observable); ok {
		t.unsubscribe = obs.Subscribe(func(e ChangeEvent) {
			if e.Kind == ChangeReplace {
				t.realizer.Invalidate(e.Index)
			} else {
				t.stale = true
			}
			t.body.InvalidateMeasure()
		})
	}
	t.stale = true
	t.node.InvalidateMeasure()
	return t
}

// Close stops observing the source and releases every row node.
func (t *TableView) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	t.realizer.Release(t.body)
	t.body.InvalidateMeasure()
}

func (t *TableView) newRow() *Node {
	row := NewNode("table-row")
	row.layout = &tableRow{table: t}
	for _, c := range t.columns {
		var cell *Node
		switch {
		case c.Cell.New != nil:
			cell = c.Cell.New()
		default:
			cell = NewNode("cell")
		}
		row.AddChild(cell)
	}
	return row
}

func (t *TableView) bindRow(row *Node, item any, index int) {
	for i, c := range t.columns {
		cell := row.Child(i)
		if cell == nil {
			continue
		}
		if c.Cell.Bind != nil {
			c.Cell.Bind(cell, item, index)
		}
	}
}

func (t *TableView) count() int {
	if t.source == nil {
		return 0
	}
	return t.source.Len()
}

// solveColumns resolves column extents against width using the
// contributions gathered from header and realized cells.
func (t *TableView) solveColumns(width float32) {
	tracks := make([]track.Track, len(t.columns))
	for i, c := range t.columns {
		tracks[i] = c.Track
	}
	t.colSolve = track.Solve(tracks, width, !IsUnconstrained(width), 0, t.contrib)
}

func (t *TableView) isAuto(i int, bounded bool) bool {
	k := t.columns[i].Track.Kind
	return k == track.KindAuto || (k == track.KindStar && !bounded)
}

// contribute measures the intrinsic width of each cell of row in an Auto column.
func (t *TableView) contribute(row *Node, bounded bool) {
	for i := range t.columns {
		if !t.isAuto(i, bounded) {
			continue
		}
		cell := row.Child(i)
		if cell == nil {
			continue
		}
		d := cell.Measure(UnconstrainedSize, true)
		t.contrib = append(t.contrib, track.Contribution{Span: track.Span{Start: i, Count: 1}, Extent: d.Width})
	}
}

// tableFrame stacks the header above the body. It is kept apart from
// TableView so only the body node acts as the scroll viewport.
type tableFrame struct {
	table *TableView
}

func (f *tableFrame) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	t := f.table
	var headerH float32
	if t.showHeader {
		headerH = t.rowExtent
	}
	bodyAvail := available
	if !IsUnconstrained(bodyAvail.Height) {
		bodyAvail.Height = maxf(0, bodyAvail.Height-headerH)
	}

	// Body first: realized rows feed the auto column widths the header uses.
	body := t.body.Measure(bodyAvail, dontStretch)
	t.header.Measure(Size{Width: available.Width, Height: headerH}, true)

	width := t.colSolve.Total()
	return Size{Width: width, Height: headerH + body.Height}
}

func (f *tableFrame) ArrangeChildren(n *Node, final Size) {
	t := f.table
	var headerH float32
	if t.showHeader {
		headerH = t.rowExtent
	}
	t.solveColumns(final.Width)
	t.header.InvalidateArrange()
	t.header.Arrange(Rect{Width: final.Width, Height: headerH})
	t.body.Arrange(Rect{Y: headerH, Width: final.Width, Height: maxf(0, final.Height-headerH)})
}

// tableBody windows the rows of a TableView.
type tableBody struct {
	table *TableView
}

func (b *tableBody) Scroller() *ScrollCoordinator { return b.table.scroller }

func (b *tableBody) realize(n *Node, width, viewport float32) {
	t := b.table
	t.measuring = true
	defer func() { t.measuring = false }()

	if t.stale {
		t.realizer.Clear(n)
		t.stale = false
	}
	t.index = virtual.Uniform{Count: t.count(), ItemExtent: t.rowExtent}
	t.viewport = viewport
	t.scroller.SetExtents(Size{Height: t.index.Total()}, Size{Width: width, Height: viewport})
	t.window = virtual.Window{
		Offset:   t.scroller.Offset().Y,
		Viewport: viewport,
		Overscan: t.cfg.Virtualization.Overscan,
	}.Compute(t.index)

	bounded := !IsUnconstrained(width)
	t.contrib = t.contrib[:0]
	for i, c := range t.header.children {
		if i < len(t.columns) && t.isAuto(i, bounded) {
			d := c.Measure(UnconstrainedSize, true)
			t.contrib = append(t.contrib, track.Contribution{Span: track.Span{Start: i, Count: 1}, Extent: d.Width})
		}
	}

	window := t.window
	t.realizer.Retain(func(key any) bool { return window.Contains(key.(int)) })
	t.realizer.Begin()
	for i := t.window.First; i <= t.window.Last; i++ {
		row := t.realizer.Realize(i, t.source.At(i), i)
		t.contribute(row, bounded)
	}
	t.realizer.End(n)
	t.solveColumns(width)

	for _, row := range n.children {
		row.InvalidateMeasure()
		row.Measure(Size{Width: width, Height: t.rowExtent}, true)
	}
}

func (b *tableBody) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	t := b.table
	viewport := available.Height
	if IsUnconstrained(viewport) {
		viewport = minf(float32(t.count())*t.rowExtent, t.cfg.Virtualization.MaxUnconstrainedViewport)
	}
	b.realize(n, available.Width, viewport)
	return Size{Width: t.colSolve.Total(), Height: viewport}
}

func (b *tableBody) ArrangeChildren(n *Node, final Size) {
	t := b.table
	if final.Height != t.viewport {
		b.realize(n, final.Width, final.Height)
	}
	t.measuring = true
	t.scroller.SetExtents(Size{Width: final.Width, Height: t.index.Total()}, final)
	t.measuring = false

	for i := t.window.First; i <= t.window.Last; i++ {
		row, ok := t.realizer.Node(i)
		if !ok {
			continue
		}
		row.InvalidateArrange()
		row.Arrange(Rect{Y: t.index.Offset(i), Width: final.Width, Height: t.rowExtent})
	}
}

// tableRow lays cells out on the table's shared column solve.
type tableRow struct {
	table *TableView
}

func (r *tableRow) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	cols := r.table.colSolve
	for i, c := range n.children {
		c.Measure(Size{Width: cols.Extent(i), Height: available.Height}, dontStretch)
	}
	return Size{Width: cols.Total(), Height: available.Height}
}

func (r *tableRow) ArrangeChildren(n *Node, final Size) {
	cols := r.table.colSolve
	for i, c := range n.children {
		c.Arrange(Rect{X: cols.Origin(i), Width: cols.Extent(i), Height: final.Height})
	}
}
