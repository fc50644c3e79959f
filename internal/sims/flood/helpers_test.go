package flood

import (
	"testing"

	"floodcross/internal/core"
)

// gridFromRows builds a grid from text rows: '.' land, '~' water.
func gridFromRows(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g := core.NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.Cols {
			t.Fatalf("row %d has %d cells, want %d", r, len(line), g.Cols)
		}
		for c, ch := range line {
			if ch == '~' {
				g.Set(core.Coordinate{Row: r, Col: c}, core.Water)
			}
		}
	}
	return g
}

func coord(r, c int) core.Coordinate { return core.Coordinate{Row: r, Col: c} }
