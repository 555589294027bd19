package detect

import "math"

// Grid is a uniform spatial grid for broad-phase candidate lookup inside
// a bounded arena. Bodies are inserted by position and index, then nearby
// indices can be queried via a 3x3 cell neighborhood.
//
// Cell size must be >= the maximum interaction distance (largest body
// diameter) so that every potential pair is found within the 3x3
// neighborhood. Unlike a wrapping world, cells at the arena edge clamp:
// there is nothing beyond the walls.
type Grid struct {
	originX     float64
	originY     float64
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of bodies that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewGrid creates a spatial grid covering the given arena.
// cellSize should be >= the maximum collision distance of the bodies.
func NewGrid(ar Arena, cellSize float64) *Grid {
	cols := int(math.Ceil(ar.Width() / cellSize))
	rows := int(math.Ceil(ar.Height() / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &Grid{
		originX:     ar.Min.X,
		originY:     ar.Min.Y,
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds a body (identified by index) at the given world position.
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given world position. Neighborhoods clamp at the arena
// edges. If fn returns true, iteration stops early.
//
// Iteration order is deterministic: cells row-major, items in insertion
// order. Callers relying on a stable contact order get it for free.
func (g *Grid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols

		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle positions at or past the walls.
func (g *Grid) posToCell(x, y float64) (col, row int) {
	col = int((x - g.originX) * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int((y - g.originY) * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
