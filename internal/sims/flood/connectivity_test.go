package flood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodcross/internal/core"
)

func TestIsCrossable(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want bool
	}{
		{"AllLand", []string{"...", "...", "..."}, true},
		{"TopRowWater", []string{"~~~", "...", "..."}, false},
		{"BottomRowWater", []string{"...", "...", "~~~"}, false},
		{"Channel", []string{"~.~", "~.~", "~.~"}, true},
		{"Wall", []string{"...", "~~~", "..."}, false},
		{"DiagonalOnly", []string{".~", "~."}, false},
		{"Winding", []string{".~~~", ".~..", "...~", "~~.~"}, true},
		{"DeadEnd", []string{".~~~", ".~..", "..~~", "~~~."}, false},
		{"SourceBoxedIn", []string{"~~.", "~.~", "~..", "~.~", "...", ".~~"}, false},
		{"PathTurnsUpward", []string{".~~~~", ".~...", "...~.", "~~~~."}, true},
		{"TwoByTwoAfterFirstFlood", []string{"~.", ".."}, true},
		{"SingleRowAllLand", []string{"....."}, true},
		{"SingleRowOneLand", []string{"~~~~."}, true},
		{"SingleRowAllWater", []string{"~~~~~"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.rows...)
			assert.Equal(t, tc.want, IsCrossable(g))
			route, ok := CrossingRoute(g)
			assert.Equal(t, tc.want, ok, "CrossingRoute must agree with IsCrossable")
			if ok {
				requireValidRoute(t, g, route)
			} else {
				assert.Nil(t, route)
			}
		})
	}
}

func TestIsCrossableDoesNotMutate(t *testing.T) {
	g := gridFromRows(t, "~.~", "...", ".~~")
	before := g.Clone()
	_ = IsCrossable(g)
	_, _ = CrossingRoute(g)
	assert.Equal(t, before.Cells(), g.Cells())
}

func TestIsCrossableNilGrid(t *testing.T) {
	assert.False(t, IsCrossable(nil))
}

func TestCrossingRouteIsShortest(t *testing.T) {
	g := gridFromRows(t, "....", "....", "....", "....")
	route, ok := CrossingRoute(g)
	require.True(t, ok)
	assert.Len(t, route, 4, "an open grid is crossed straight down")

	g = gridFromRows(t, ".~~~", ".~..", "...~", "~~.~")
	route, ok = CrossingRoute(g)
	require.True(t, ok)
	assert.Equal(t, []core.Coordinate{coord(0, 0), coord(1, 0), coord(2, 0), coord(2, 1), coord(2, 2), coord(3, 2)}, route)
}

func TestCrossingRouteSingleRow(t *testing.T) {
	g := gridFromRows(t, "~~.~~")
	route, ok := CrossingRoute(g)
	require.True(t, ok)
	assert.Equal(t, []core.Coordinate{coord(0, 2)}, route)
}

func requireValidRoute(t *testing.T, g *core.Grid, route []core.Coordinate) {
	t.Helper()
	require.NotEmpty(t, route)
	require.Equal(t, 0, route[0].Row, "route must start on the top row")
	require.Equal(t, g.Rows-1, route[len(route)-1].Row, "route must end on the bottom row")
	for i, c := range route {
		require.True(t, g.IsLand(c.Row, c.Col), "route cell %v must be land", c)
		if i == 0 {
			continue
		}
		prev := route[i-1]
		dist := abs(c.Row-prev.Row) + abs(c.Col-prev.Col)
		require.Equal(t, 1, dist, "route steps %v -> %v must be orthogonal neighbours", prev, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
