package life

import (
	"life-slots/pkg/core"
)

// offsets lists the Moore neighborhood clockwise from the north-west corner.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	{1, 1}, {1, 0}, {1, -1}, {0, -1},
}

// Neighbors counts the live cells around (i, j). The grid is bounded: offsets
// that leave the grid contribute nothing.
func Neighbors(g core.Grid, i, j int) int {
	n := 0
	for _, o := range offsets {
		if g.Alive(i+o[0], j+o[1]) {
			n++
		}
	}
	return n
}

// Step computes the next generation of g under Conway's rules. Every count is
// taken from g, which is left untouched.
func Step(g core.Grid) core.Grid {
	b := core.NewBuilder(g.Size())
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			b.Set(i, j, next(g.Alive(i, j), Neighbors(g, i, j)))
		}
	}
	return b.Grid()
}

func next(alive bool, neighbors int) bool {
	if neighbors < 2 || neighbors > 3 {
		return false
	}
	if !alive && neighbors == 3 {
		return true
	}
	return alive
}
