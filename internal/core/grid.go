package core

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Land cells are passable.
	Land Cell = iota
	// Water cells block movement.
	Water
)

func (c Cell) String() string {
	if c == Water {
		return "water"
	}
	return "land"
}

// Grid stores a rows×cols matrix of cells in row-major order.
type Grid struct {
	Rows, Cols int
	data       []Cell
}

// NewGrid allocates an all-land grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]Cell, rows*cols)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Coordinate converts a linear index back to (row, col).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.Cols, Col: idx % g.Cols}
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the state of the cell at c.
func (g *Grid) At(c Coordinate) Cell { return g.data[g.Index(c.Row, c.Col)] }

// Set stores a state for the cell at c.
func (g *Grid) Set(c Coordinate, v Cell) { g.data[g.Index(c.Row, c.Col)] = v }

// IsLand reports whether (row, col) is in bounds and passable.
func (g *Grid) IsLand(row, col int) bool {
	return g.InBounds(row, col) && g.data[g.Index(row, col)] == Land
}

// Count returns how many cells hold v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clear turns every cell back into land.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Land
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}
