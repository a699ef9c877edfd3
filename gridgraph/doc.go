// Package gridgraph treats a 2D grid of cells as a weighted search space for
// the astar engine.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cell is a search state: its successors are the neighboring land cells,
//     its step cost is the value of the cell entered (×√2 on diagonals).
//   - Identifies connected regions (“islands”) so that impossible searches
//     can be rejected before they start.
//
// Why:
//
//   - Game maps: unit movement over weighted terrain.
//   - Robotics: occupancy grids with traversal costs.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H),   Memory: O(W×H).
//   - Connected:           O(1).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, no corner cutting).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a land cell holds a negative value.
//   - ErrOutOfBounds, ErrWall: Cell was asked for an unusable position.
package gridgraph
