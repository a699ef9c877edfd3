package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
	"github.com/katalvlaran/lvlath/roadmap"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoadmap_Romania(t *testing.T) {
	out, stderr, err := execute(t, "roadmap", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Arad -> Sibiu -> RimnicuVilcea -> Pitesti -> Bucharest")
	assert.Contains(t, out, "Solution cost: 418")
	assert.NotContains(t, out, "Open list:")
	assert.Contains(t, stderr, `"msg":"search finished"`)
}

func TestRoadmap_TraceFromFile(t *testing.T) {
	out, _, err := execute(t, "roadmap", "--map", "testdata/roads.yaml", "--from", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1:")
	assert.Contains(t, out, "Step 2:")
	assert.Contains(t, out, "\tC f=5 g=5 h=0\n")
	assert.Contains(t, out, "A -> B -> C")
	assert.Contains(t, out, "Solution cost: 2")
	assert.Contains(t, out, "SearchSteps: 3")
}

func TestRoadmap_ExplicitGoal(t *testing.T) {
	out, _, err := execute(t, "roadmap", "-q", "--from", "Bucharest", "--to", "Bucharest")
	require.NoError(t, err)
	assert.Contains(t, out, "Solution steps: 0")
	assert.Contains(t, out, "Solution cost: 0")
}

func TestRoadmap_UnknownCity(t *testing.T) {
	_, _, err := execute(t, "roadmap", "--from", "Nowhere")
	assert.ErrorIs(t, err, roadmap.ErrUnknownCity)
}

func TestRoadmap_Unreachable(t *testing.T) {
	out, _, err := execute(t, "roadmap", "-q", "--map", "testdata/roads.yaml", "--from", "D")
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.Contains(t, out, "Did not find goal state")
}

func TestRoadmap_InadmissibleWarning(t *testing.T) {
	out, stderr, err := execute(t, "roadmap", "-q", "--map", "testdata/overestimate.yaml", "--from", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "A -> B")
	assert.Contains(t, stderr, "routes may not be optimal")
}

func TestRoadmap_All(t *testing.T) {
	out, stderr, err := execute(t, "roadmap", "--all", "--map", "testdata/roads.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "City")
	assert.Contains(t, out, "unreachable")
	assert.Contains(t, stderr, `"unreachable":1`)
}

func TestRoadmap_NodeLimit(t *testing.T) {
	_, _, err := execute(t, "--max-nodes", "3", "roadmap", "-q")
	assert.ErrorIs(t, err, astar.ErrNodeLimit)
}

func TestGrid_Maze(t *testing.T) {
	out, _, err := execute(t, "grid", "-f", "testdata/maze.yaml", "--to", "3,0", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "(0,0) -> (0,1) -> (0,2) -> (1,2) -> (2,2) -> (3,2) -> (3,1) -> (3,0)")
	assert.Contains(t, out, "Solution cost: 23")
}

func TestGrid_Errors(t *testing.T) {
	_, _, err := execute(t, "grid", "-f", "testdata/islands.yaml", "--to", "2,0")
	assert.ErrorIs(t, err, astar.ErrNoPath)

	_, _, err = execute(t, "grid", "-f", "testdata/islands.yaml", "--to", "1,0")
	assert.ErrorIs(t, err, gridgraph.ErrWall)

	_, _, err = execute(t, "grid", "-f", "testdata/islands.yaml", "--to", "7,0")
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, _, err = execute(t, "grid", "-f", "testdata/islands.yaml", "--to", "east")
	assert.ErrorIs(t, err, errCoordinate)

	_, _, err = execute(t, "grid", "-f", "testdata/missing.yaml", "--to", "0,0")
	assert.Error(t, err)
}

func TestMetricsDump(t *testing.T) {
	_, stderr, err := execute(t, "--metrics", "roadmap", "-q")
	require.NoError(t, err)
	assert.Contains(t, stderr, `astar_searches_total{outcome="succeeded"} 1`)
	assert.Contains(t, stderr, "astar_solution_cost_sum 418")
}

func TestMetricsDump_Failure(t *testing.T) {
	_, stderr, err := execute(t, "--metrics", "roadmap", "-q", "--map", "testdata/roads.yaml", "--from", "D")
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Contains(t, stderr, `astar_searches_total{outcome="failed"} 1`)
	assert.Contains(t, stderr, "astar_steps_total 2")
}

func TestMaxNodes_Negative(t *testing.T) {
	_, _, err := execute(t, "--max-nodes=-1", "roadmap", "-q")
	assert.ErrorIs(t, err, astar.ErrBadMaxNodes)
}

func TestLogging(t *testing.T) {
	_, stderr, err := execute(t, "-v", "--log-format", "text", "roadmap", "-q")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "astar: expand")

	_, _, err = execute(t, "--log-format", "xml", "roadmap")
	assert.Error(t, err)
}
