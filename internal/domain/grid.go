package domain

// Grid is a rectangular table of raw cell values.
// An empty string stands for an empty cell.
type Grid struct {
	cells [][]string
	cols  int
}

// NewGrid builds a grid from rows of uneven length.
// Short rows are right-padded with empty cells up to the widest row.
func NewGrid(rows [][]string) Grid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, cols)
		copy(padded, row)
		cells[i] = padded
	}

	return Grid{cells: cells, cols: cols}
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns
func (g Grid) Cols() int {
	return g.cols
}

// Row returns a copy of row r, or nil if r is out of range
func (g Grid) Row(r int) []string {
	if r < 0 || r >= len(g.cells) {
		return nil
	}
	return append([]string(nil), g.cells[r]...)
}

// Column returns column c top to bottom, or nil if c is out of range
func (g Grid) Column(c int) []string {
	if c < 0 || c >= g.cols {
		return nil
	}
	col := make([]string, len(g.cells))
	for i, row := range g.cells {
		col[i] = row[c]
	}
	return col
}
