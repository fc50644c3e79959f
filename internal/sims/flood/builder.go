package flood

import (
	"math/rand/v2"

	"floodcross/internal/core"
)

// Source supplies uniformly distributed draws in [0, n).
// *rand.Rand and the pkg/core RNG both satisfy it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Schedule is the order in which cells are flooded. It holds every
// coordinate of its grid exactly once.
type Schedule []core.Coordinate

// SequentialSchedule enumerates every coordinate row by row, left to right.
func SequentialSchedule(rows, cols int) Schedule {
	out := make(Schedule, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, core.Coordinate{Row: r, Col: c})
		}
	}
	return out
}

// Shuffle permutes s in place with a Fisher-Yates pass driven by src.
// A nil src uses the process-wide math/rand/v2 generator.
func (s Schedule) Shuffle(src Source) {
	if src == nil {
		src = globalSource{}
	}
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Build returns an all-land grid and its flood schedule. Callers validate
// rows and cols first; Build assumes they are positive.
func Build(rows, cols int, randomize bool, src Source) (*core.Grid, Schedule) {
	grid := core.NewGrid(rows, cols)
	schedule := SequentialSchedule(grid.Rows, grid.Cols)
	if randomize {
		schedule.Shuffle(src)
	}
	return grid, schedule
}
