package model

// Grid is a row-major matrix of cells. A cell value of 0 means empty; a
// positive value is the color id of an occupied cell. The origin is the
// top-left corner.
type Grid [][]int

// NewGrid creates an empty grid with the given dimensions.
// The argument order is always rows then columns.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return g
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Cell returns the value at the given position, or 0 if out of bounds
func (g Grid) Cell(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}
	return g[row][col]
}

// InBounds returns true if the position is within the grid
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = make([]int, len(row))
		copy(c[i], row)
	}
	return c
}

// RowFull returns true if every cell in the row is occupied
func (g Grid) RowFull(row int) bool {
	for _, v := range g[row] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Offset is the board coordinate of a shape grid's top-left corner
type Offset struct {
	X int `json:"x"` // column
	Y int `json:"y"` // row
}

// Translate returns the offset shifted by (dx, dy)
func (o Offset) Translate(dx, dy int) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy}
}
