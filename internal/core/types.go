package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Coordinate addresses a single cell, 0-indexed.
type Coordinate struct {
	Row int
	Col int
}

// Sim is the part of a simulation the front end needs in order to draw it.
type Sim interface {
	Name() string
	Size() Size
	Cells() []uint8
}
