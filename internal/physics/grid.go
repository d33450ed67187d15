package physics

import "math"

// SpatialGrid is a uniform grid over the playfield for broad-phase collision
// detection. Items are inserted by the centre of their box and an index into
// the caller's slice; QueryAround visits the 3x3 neighbourhood of a point.
//
// Cell size must be at least the largest centre distance at which two
// colliding boxes can overlap, so every candidate lies in the neighbourhood.
// Points outside the playfield are clamped to the border cells.
type SpatialGrid struct {
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       [][]int // Item indices per cell, reused between frames
}

// NewSpatialGrid creates a grid covering a w x h playfield.
func NewSpatialGrid(w, h, cellSize float64) *SpatialGrid {
	cols := max(1, int(math.Ceil(w/cellSize)))
	rows := max(1, int(math.Ceil(h/cellSize)))
	return &SpatialGrid{
		invCellSize: 1 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item at the given point.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.cellOf(x, y)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], index)
}

// QueryAround calls fn for each item in the 3x3 cells around (x, y).
// Iteration stops early if fn returns true. Order is by cell, not by index.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.cellOf(x, y)
	for r := max(0, row-1); r <= min(g.rows-1, row+1); r++ {
		for c := max(0, col-1); c <= min(g.cols-1, col+1); c++ {
			for _, index := range g.cells[r*g.cols+c] {
				if fn(index) {
					return
				}
			}
		}
	}
}

func (g *SpatialGrid) cellOf(x, y float64) (col, row int) {
	col = int(Clamp(math.Floor(x*g.invCellSize), 0, float64(g.cols-1)))
	row = int(Clamp(math.Floor(y*g.invCellSize), 0, float64(g.rows-1)))
	return col, row
}
