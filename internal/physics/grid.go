package physics

import (
	"math"
	"slices"
)

// Grid is a uniform grid for broad-phase collision detection on a bounded
// field. Objects are inserted by center position and index, then the
// candidates near a point come from its 3x3 cell neighborhood.
//
// Cell size must be >= the largest center distance, per axis, at which two
// objects can still overlap. Positions outside the field are clamped into
// the edge cells, so objects that have left the field are still found.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
}

// NewGrid creates a grid covering a width x height field.
func NewGrid(width, height, cellSize float64) *Grid {
	g := &Grid{}
	g.Reset(width, height, cellSize)
	return g
}

// Reset empties the grid and resizes it, reusing cell memory where it can.
func (g *Grid) Reset(width, height, cellSize float64) {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)

	g.cellSize = cellSize
	g.invCellSize = 1 / cellSize
	g.cols, g.rows = cols, rows
	if n := cols * rows; cap(g.cells) >= n {
		g.cells = g.cells[:n]
	} else {
		g.cells = make([][]int, n)
	}
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds the item with the given index at (x, y).
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.cell(x, y)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], index)
}

// Query appends to dst the indices stored around (x, y), in ascending order,
// and returns the extended slice.
func (g *Grid) Query(x, y float64, dst []int) []int {
	col, row := g.cell(x, y)
	start := len(dst)
	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			dst = append(dst, g.cells[r*g.cols+c]...)
		}
	}
	slices.Sort(dst[start:])
	return dst
}

// cell maps a position to its cell, clamped to the grid.
func (g *Grid) cell(x, y float64) (col, row int) {
	col = clampIndex(int(math.Floor(x*g.invCellSize)), g.cols)
	row = clampIndex(int(math.Floor(y*g.invCellSize)), g.rows)
	return col, row
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
