package game

import "golang.org/x/exp/constraints"

// Position is a cell on the board, X is the column and Y the row.
type Position struct {
	X int
	Y int
}

// Add offsets the position by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance returns |ax-bx| + |ay-by|.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Grid is a width x height boolean grid indexed as grid[x][y].
type Grid [][]bool

// NewGrid allocates an all-false grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, width)
	for x := range g {
		g[x] = make([]bool, height)
	}
	return g
}

func (g Grid) Width() int {
	return len(g)
}

func (g Grid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Get reports whether p is set, positions outside the grid are never set.
func (g Grid) Get(p Position) bool {
	if p.X < 0 || p.X >= g.Width() || p.Y < 0 || p.Y >= g.Height() {
		return false
	}
	return g[p.X][p.Y]
}

// Positions lists every set cell, column by column.
func (g Grid) Positions() []Position {
	positions := []Position{}
	for x, column := range g {
		for y, set := range column {
			if set {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Count returns the number of set cells.
func (g Grid) Count() int {
	count := 0
	for _, column := range g {
		for _, set := range column {
			if set {
				count++
			}
		}
	}
	return count
}

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	c := make(Grid, len(g))
	for x, column := range g {
		c[x] = make([]bool, len(column))
		copy(c[x], column)
	}
	return c
}
