package gridgraph

import (
	"fmt"
	"math"
)

// Cell represents a single grid cell with its coordinates and stored value.
// It implements astar.State[Cell, int].
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y); the cost of entering the cell
	grid  *GridGraph
}

// String renders the cell as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// EstimateRemainingCost is the Manhattan distance (Conn4) or the octile
// distance (Conn8) to goal, scaled by the cheapest land value of the grid.
// Every move costs at least that much, so the estimate is admissible.
func (c Cell) EstimateRemainingCost(goal Cell) float64 {
	if c.grid == nil {
		return 0
	}
	dx := math.Abs(float64(c.X - goal.X))
	dy := math.Abs(float64(c.Y - goal.Y))
	unit := float64(c.grid.minCost)
	if c.grid.Conn == Conn8 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return unit * (hi + (math.Sqrt2-1)*lo)
	}

	return unit * (dx + dy)
}

// IsGoal reports whether c is goal.
func (c Cell) IsGoal(goal Cell) bool { return c.SameState(goal) }

// SameState reports whether both cells are the same position of the same grid.
func (c Cell) SameState(other Cell) bool {
	return c.X == other.X && c.Y == other.Y && c.grid == other.grid
}

// StepCost is the successor's value, times √2 for a diagonal move.
func (c Cell) StepCost(successor Cell) float64 {
	cost := float64(successor.Value)
	if c.X != successor.X && c.Y != successor.Y {
		cost *= math.Sqrt2
	}

	return cost
}

// Successors lists the land cells reachable in one move, in the fixed order of
// NeighborOffsets (clockwise from north).
func (c Cell) Successors(_ *Cell) ([]Cell, error) {
	gg := c.grid
	if gg == nil {
		return nil, nil
	}
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if gg.canStep(c.X, c.Y, d[0], d[1]) {
			out = append(out, gg.cell(c.X+d[0], c.Y+d[1]))
		}
	}

	return out, nil
}

// Key returns the row-major index of the cell.
func (c Cell) Key() int {
	if c.grid == nil {
		return -1
	}

	return c.grid.index(c.X, c.Y)
}
