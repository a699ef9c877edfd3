package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost if a land
// cell (possible with LandThreshold ≤ 0) holds a negative value.
// Algorithmic complexity: O(W×H×d) time and O(W×H) memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minCost := -1
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for x, v := range cells[y] {
			if v < opts.LandThreshold {
				continue
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
			if minCost < 0 || v < minCost {
				minCost = v
			}
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	if minCost < 0 {
		minCost = 0
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
		minCost:         minCost,
	}
	gg.region = gg.label()

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and walkable.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// canStep reports whether a move from (x,y) by (dx,dy) is allowed: the target
// must be land, and a diagonal move may not cut a corner, so both orthogonal
// cells it passes must be land as well.
func (gg *GridGraph) canStep(x, y, dx, dy int) bool {
	if !gg.IsLand(x+dx, y+dy) {
		return false
	}
	if dx != 0 && dy != 0 {
		return gg.IsLand(x+dx, y) && gg.IsLand(x, y+dy)
	}

	return true
}

// Cell returns the search state for (x,y).
// Returns ErrOutOfBounds or ErrWall when the cell cannot be stood on.
func (gg *GridGraph) Cell(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if !gg.IsLand(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrWall, x, y)
	}

	return gg.cell(x, y), nil
}

func (gg *GridGraph) cell(x, y int) Cell {
	return Cell{X: x, Y: y, Value: gg.CellValues[y][x], grid: gg}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
