package retained

import (
	"github.com/agiangrant/lattice/track"
)

// GridCell is the attached placement of a node inside a Grid.
type GridCell struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
}

// GridCell returns the node's grid placement.
func (n *Node) GridCell() GridCell { return n.props.cell }

// Grid places children on a two-dimensional track layout.
//
// Children are placed by row/column index and span. Indices beyond the
// declared track count land on the last track; a grid with no declared
// tracks on an axis behaves as a single star track.
type Grid struct {
	node *Node

	columns       []track.Track
	rows          []track.Track
	columnSpacing float32
	rowSpacing    float32

	// Auto-track contributions gathered during measure, reused at arrange
	// when stars are re-resolved against the final size.
	colContrib []track.Contribution
	rowContrib []track.Contribution

	colResult track.Result
	rowResult track.Result

	defaults *gridState
}

type gridState struct {
	columns, rows             []track.Track
	columnSpacing, rowSpacing float32
}

// NewGrid creates a grid with the given column and row tracks.
func NewGrid(columns, rows []track.Track) *Grid {
	g := &Grid{node: NewNode("grid"), columns: columns, rows: rows}
	g.node.layout = g
	return g
}

// Node returns the grid's tree node.
func (g *Grid) Node() *Node { return g.node }

// Columns returns the column definitions.
func (g *Grid) Columns() []track.Track { return g.columns }

// Rows returns the row definitions.
func (g *Grid) Rows() []track.Track { return g.rows }

// SetColumns replaces the column definitions.
func (g *Grid) SetColumns(tracks []track.Track) *Grid {
	g.columns = tracks
	g.node.InvalidateMeasure()
	return g
}

// SetRows replaces the row definitions.
func (g *Grid) SetRows(tracks []track.Track) *Grid {
	g.rows = tracks
	g.node.InvalidateMeasure()
	return g
}

// SetSpacing sets the gap between columns and between rows.
func (g *Grid) SetSpacing(column, row float32) *Grid {
	g.columnSpacing, g.rowSpacing = column, row
	g.node.InvalidateMeasure()
	return g
}

func (g *Grid) snapshotDefaults() {
	g.defaults = &gridState{
		columns:       append([]track.Track(nil), g.columns...),
		rows:          append([]track.Track(nil), g.rows...),
		columnSpacing: g.columnSpacing,
		rowSpacing:    g.rowSpacing,
	}
}

func (g *Grid) resetToDefaults() {
	d := g.defaults
	if d == nil {
		return
	}
	g.columns = append(g.columns[:0:0], d.columns...)
	g.rows = append(g.rows[:0:0], d.rows...)
	g.columnSpacing, g.rowSpacing = d.columnSpacing, d.rowSpacing
}

// InvalidateTracks requests a new solve, e.g. after a bound track's
// provider value changed.
func (g *Grid) InvalidateTracks() {
	g.node.InvalidateMeasure()
}

// Add appends child at the given cell.
func (g *Grid) Add(child *Node, row, column int) *Grid {
	return g.AddSpan(child, row, column, 1, 1)
}

// AddSpan appends child covering rowSpan rows and columnSpan columns.
func (g *Grid) AddSpan(child *Node, row, column, rowSpan, columnSpan int) *Grid {
	child.props.cell = GridCell{Row: row, Column: column, RowSpan: rowSpan, ColumnSpan: columnSpan}
	g.node.AddChild(child)
	return g
}

// SetCell moves an existing child.
func (g *Grid) SetCell(child *Node, cell GridCell) {
	if child.props.cell != cell {
		child.props.cell = cell
		g.node.InvalidateMeasure()
	}
}

// ColumnResult returns the column solve from the last layout pass.
func (g *Grid) ColumnResult() track.Result { return g.colResult }

// RowResult returns the row solve from the last layout pass.
func (g *Grid) RowResult() track.Result { return g.rowResult }

func (g *Grid) spans(c *Node) (col, row track.Span) {
	ncol, nrow := len(g.columns), len(g.rows)
	if ncol == 0 {
		ncol = 1
	}
	if nrow == 0 {
		nrow = 1
	}
	col = track.Normalize(track.Span{Start: c.props.cell.Column, Count: c.props.cell.ColumnSpan}, ncol)
	row = track.Normalize(track.Span{Start: c.props.cell.Row, Count: c.props.cell.RowSpan}, nrow)
	return col, row
}

// sizesToContent reports whether any track in s takes its extent from content.
func sizesToContent(tracks []track.Track, s track.Span, bounded bool) bool {
	if len(tracks) == 0 {
		return !bounded
	}
	for i := s.Start; i < s.Start+s.Count; i++ {
		switch tracks[i].Kind {
		case track.KindAuto:
			return true
		case track.KindStar:
			if !bounded {
				return true
			}
		}
	}
	return false
}

func (g *Grid) MeasureChildren(n *Node, available Size, dontStretch bool) Size {
	colsBounded := !IsUnconstrained(available.Width)
	rowsBounded := !IsUnconstrained(available.Height)

	g.colContrib = g.colContrib[:0]
	g.rowContrib = g.rowContrib[:0]

	// Pass 1: intrinsic sizes for content-sized tracks.
	for _, c := range n.children {
		if c.props.collapsed {
			continue
		}
		cs, rs := g.spans(c)
		autoCol := sizesToContent(g.columns, cs, colsBounded)
		autoRow := sizesToContent(g.rows, rs, rowsBounded)
		if !autoCol && !autoRow {
			continue
		}
		d := c.Measure(UnconstrainedSize, true)
		if autoCol {
			g.colContrib = append(g.colContrib, track.Contribution{Span: cs, Extent: d.Width})
		}
		if autoRow {
			g.rowContrib = append(g.rowContrib, track.Contribution{Span: rs, Extent: d.Height})
		}
	}

	g.colResult = track.Solve(g.columns, available.Width, colsBounded, g.columnSpacing, g.colContrib)
	g.rowResult = track.Solve(g.rows, available.Height, rowsBounded, g.rowSpacing, g.rowContrib)

	// Pass 2: measure every child against the extent of its cell.
	for _, c := range n.children {
		cs, rs := g.spans(c)
		c.Measure(Size{Width: g.colResult.SpanExtent(cs), Height: g.rowResult.SpanExtent(rs)}, dontStretch)
	}

	debugLog("[grid] %s#%d cols=%v rows=%v", n.name, n.id, g.colResult.Extents, g.rowResult.Extents)
	return Size{Width: g.colResult.Total(), Height: g.rowResult.Total()}
}

func (g *Grid) ArrangeChildren(n *Node, final Size) {
	// Stars resolve against the final size; bound tracks are re-read.
	g.colResult = track.Solve(g.columns, final.Width, true, g.columnSpacing, g.colContrib)
	g.rowResult = track.Solve(g.rows, final.Height, true, g.rowSpacing, g.rowContrib)

	for _, c := range n.children {
		cs, rs := g.spans(c)
		c.Arrange(Rect{
			X:      g.colResult.Origin(cs.Start),
			Y:      g.rowResult.Origin(rs.Start),
			Width:  g.colResult.SpanExtent(cs),
			Height: g.rowResult.SpanExtent(rs),
		})
	}
}
