// Package parser detects border-delimited tables in a sheet and rebuilds
// their contents.
package parser

// Border holds the style name of each cell edge; an empty string means no border.
type Border struct {
	Top    string
	Bottom string
	Left   string
	Right  string
}

// Cell is a read-only snapshot of one sheet cell.
type Cell struct {
	// Row is the row index (1-based).
	Row int
	// Col is the column index (1-based).
	Col int
	// Value is the formatted cell text; empty when the cell has no value.
	Value string
	// Border is the per-edge border style.
	Border Border
	// Fill is the fill color token; empty when the cell is unfilled.
	Fill string
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Value == ""
}

// Grid is a 2-D collection of cells addressed by 1-based (row, col).
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid returns an empty grid of the given extents.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = Cell{Row: r + 1, Col: c + 1}
		}
	}
	return g
}

// GridFromRows builds a value-only grid from row-major values.
func GridFromRows(values [][]string) *Grid {
	cols := 0
	for _, row := range values {
		if len(row) > cols {
			cols = len(row)
		}
	}
	g := NewGrid(len(values), cols)
	for r, row := range values {
		for c, v := range row {
			g.cells[r][c].Value = v
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Cell returns the cell at (row, col). Positions outside the grid yield an
// empty cell carrying the requested coordinates.
func (g *Grid) Cell(row, col int) Cell {
	if !g.inside(row, col) {
		return Cell{Row: row, Col: col}
	}
	return g.cells[row-1][col-1]
}

// Value returns the value at (row, col).
func (g *Grid) Value(row, col int) string {
	return g.Cell(row, col).Value
}

// SetValue stores a value; positions outside the grid are ignored.
func (g *Grid) SetValue(row, col int, value string) {
	if g.inside(row, col) {
		g.cells[row-1][col-1].Value = value
	}
}

// SetBorder stores the border of a cell; positions outside the grid are ignored.
func (g *Grid) SetBorder(row, col int, b Border) {
	if g.inside(row, col) {
		g.cells[row-1][col-1].Border = b
	}
}

// SetFill stores the fill token of a cell; positions outside the grid are ignored.
func (g *Grid) SetFill(row, col int, fill string) {
	if g.inside(row, col) {
		g.cells[row-1][col-1].Fill = fill
	}
}

// Row returns the values of one row.
func (g *Grid) Row(row int) []string {
	out := make([]string, g.cols)
	for c := 1; c <= g.cols; c++ {
		out[c-1] = g.Value(row, c)
	}
	return out
}

// Column returns the values of one column.
func (g *Grid) Column(col int) []string {
	out := make([]string, g.rows)
	for r := 1; r <= g.rows; r++ {
		out[r-1] = g.Value(r, col)
	}
	return out
}

// SubGrid copies the values of the rectangle [r1..r2] x [c1..c2] into a new
// grid whose (1,1) is (r1, c1). Formatting is not copied.
func (g *Grid) SubGrid(r1, c1, r2, c2 int) *Grid {
	sub := NewGrid(r2-r1+1, c2-c1+1)
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			sub.SetValue(r-r1+1, c-c1+1, g.Value(r, c))
		}
	}
	return sub
}

func (g *Grid) inside(row, col int) bool {
	return row >= 1 && row <= g.rows && col >= 1 && col <= g.cols
}
