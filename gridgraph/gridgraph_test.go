package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged or negative inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	negative := gridgraph.DefaultGridOptions()
	negative.LandThreshold = -5
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeLand", [][]int{{1, -1}}, negative, gridgraph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds and IsLand on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.True(t, gg.IsLand(1, 0))
	assert.False(t, gg.IsLand(0, 0))
	assert.False(t, gg.IsLand(5, 5))
}

// TestNewGridGraph_Copies verifies the grid does not alias its input.
func TestNewGridGraph_Copies(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	grid[0][0] = 0
	assert.True(t, gg.IsLand(0, 0))
}

//----------------------------------------------------------------------------//
// Cell Tests
//----------------------------------------------------------------------------//

func TestCell_Errors(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	_, err = gg.Cell(2, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.Cell(1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrWall)

	c, err := gg.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Value)
	assert.Equal(t, 3, c.Key())
	assert.Equal(t, "(1,1)", c.String())
}

func TestCell_Successors(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)

	// (0,0): east is a wall, so the diagonal to (1,1) would cut its corner.
	c, _ := gg.Cell(0, 0)
	succ, err := c.Successors(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0,1)"}, names(succ))

	// (1,1): every neighbor but north; NE and NW cut the wall at (1,0).
	c, _ = gg.Cell(1, 1)
	succ, err = c.Successors(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"(2,1)", "(2,2)", "(1,2)", "(0,2)", "(0,1)"}, names(succ))
}

func TestCell_Costs(t *testing.T) {
	grid := [][]int{
		{2, 3},
		{4, 5},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	a, _ := gg.Cell(0, 0)
	b, _ := gg.Cell(1, 1)
	e, _ := gg.Cell(1, 0)

	assert.Equal(t, 4.0, a.EstimateRemainingCost(b))
	assert.Equal(t, 3.0, a.StepCost(e))
	assert.InDelta(t, 5*math.Sqrt2, a.StepCost(b), 1e-12)
	assert.True(t, b.IsGoal(b))
	assert.False(t, a.SameState(b))

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	g8, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	a8, _ := g8.Cell(0, 0)
	b8, _ := g8.Cell(1, 1)
	assert.InDelta(t, 2*math.Sqrt2, a8.EstimateRemainingCost(b8), 1e-12)

	// Same coordinates on different grids are different states.
	assert.False(t, a.SameState(a8))
}

//----------------------------------------------------------------------------//
// Components Tests
//----------------------------------------------------------------------------//

func TestConnectedComponents(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2, 5, 6, 10}, comps[0])
	assert.Equal(t, []int{4, 8, 9, 12, 13}, comps[1])

	a, _ := gg.Cell(1, 0)
	b, _ := gg.Cell(0, 2)
	c, _ := gg.Cell(4, 0)
	assert.True(t, gg.Connected(a, b))
	assert.False(t, gg.Connected(a, c))

	other, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.False(t, other.Connected(a, b))
}

// TestConnectedComponents_NoCornerCutting verifies that two cells touching
// only at a corner stay separate under Conn8.
func TestConnectedComponents_NoCornerCutting(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {0, 1}}, opts)
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 2)
}

//----------------------------------------------------------------------------//
// Search Tests
//----------------------------------------------------------------------------//

func TestSearch_WeightedDetour(t *testing.T) {
	grid := [][]int{
		{1, 9, 9, 9},
		{1, 0, 0, 9},
		{1, 1, 1, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	start, _ := gg.Cell(0, 0)
	goal, _ := gg.Cell(3, 0)

	res, err := astar.Solve[gridgraph.Cell, int](start, goal)
	require.NoError(t, err)
	assert.Equal(t, 23.0, res.Cost)
	assert.Equal(t,
		[]string{"(0,0)", "(0,1)", "(0,2)", "(1,2)", "(2,2)", "(3,2)", "(3,1)", "(3,0)"},
		names(res.Path))
}

func TestSearch_Diagonal(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	start, _ := gg.Cell(0, 0)
	goal, _ := gg.Cell(2, 2)

	res, err := astar.Solve[gridgraph.Cell, int](start, goal)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, res.Cost, 1e-9)
	assert.Equal(t, []string{"(0,0)", "(1,1)", "(2,2)"}, names(res.Path))
}

func TestSearch_Unreachable(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	start, _ := gg.Cell(0, 0)
	goal, _ := gg.Cell(2, 0)
	assert.False(t, gg.Connected(start, goal))

	_, err = astar.Solve[gridgraph.Cell, int](start, goal)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func names(cells []gridgraph.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}

	return out
}
