package flood

import "floodcross/internal/core"

// Four-directional neighbourhood: down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsCrossable reports whether a land path joins the top row to the bottom row.
// Every land cell of the top row seeds the search; with a single row a land
// cell is both source and target.
func IsCrossable(g *core.Grid) bool {
	_, ok := search(g, false)
	return ok
}

// CrossingRoute returns one shortest land route from the top row to the
// bottom row, ordered top to bottom. The boolean always matches IsCrossable.
func CrossingRoute(g *core.Grid) ([]core.Coordinate, bool) {
	return search(g, true)
}

func search(g *core.Grid, trace bool) ([]core.Coordinate, bool) {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 {
		return nil, false
	}
	total := g.Rows * g.Cols
	visited := make([]bool, total)
	var parent []int
	if trace {
		parent = make([]int, total)
		for i := range parent {
			parent[i] = -1
		}
	}

	queue := make([]int, 0, total)
	for col := 0; col < g.Cols; col++ {
		if !g.IsLand(0, col) {
			continue
		}
		idx := g.Index(0, col)
		visited[idx] = true
		queue = append(queue, idx)
	}

	bottom := g.Rows - 1
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		pos := g.Coordinate(u)
		if pos.Row == bottom {
			if !trace {
				return nil, true
			}
			return unwind(g, parent, u), true
		}
		for _, d := range neighborOffsets {
			r, c := pos.Row+d[0], pos.Col+d[1]
			if !g.IsLand(r, c) {
				continue
			}
			v := g.Index(r, c)
			if visited[v] {
				continue
			}
			visited[v] = true
			if trace {
				parent[v] = u
			}
			queue = append(queue, v)
		}
	}
	return nil, false
}

func unwind(g *core.Grid, parent []int, end int) []core.Coordinate {
	var route []core.Coordinate
	for at := end; at >= 0; at = parent[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
