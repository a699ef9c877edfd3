package trace_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/roadmap"
	"github.com/katalvlaran/lvlath/trace"
)

func pair(t *testing.T, roads ...roadmap.RoadConfig) (roadmap.City, roadmap.City) {
	t.Helper()
	tbl, err := roadmap.NewTable(roadmap.Config{
		Target: "B",
		Cities: []roadmap.CityConfig{{Name: "A", Heuristic: 1}, {Name: "B"}},
		Roads:  roads,
	})
	require.NoError(t, err)
	a, err := tbl.City("A")
	require.NoError(t, err)

	return a, tbl.Target()
}

func TestPrinter_Success(t *testing.T) {
	a, b := pair(t, roadmap.RoadConfig{From: "A", To: "B", Distance: 1})
	e := astar.New[roadmap.City, int]()
	require.NoError(t, e.Initialize(a, b))

	var buf bytes.Buffer
	state, err := trace.New[roadmap.City, int](&buf).Run(e)
	require.NoError(t, err)
	require.Equal(t, astar.Succeeded, state)

	want := strings.Join([]string{
		"Step 1:",
		"Open list:",
		"\tB f=1 g=1 h=0",
		"Open list has 1 nodes",
		"",
		"Closed list:",
		"\tA f=1 g=0 h=1",
		"Closed list has 1 nodes",
		"",
		"---------------------------------------------",
		"",
		"Step 2:",
		"Search found the goal state.",
		"",
		"Displaying solution...",
		"",
		"A -> B",
		"",
		"Solution steps: 1",
		"Solution cost: 1",
		"SearchSteps: 2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())

	// The solution stays live until the caller releases it.
	assert.Len(t, e.Path(), 2)
	require.NoError(t, e.ReleaseSolution())
}

func TestPrinter_Failure(t *testing.T) {
	a, b := pair(t)
	e := astar.New[roadmap.City, int]()
	require.NoError(t, e.Initialize(a, b))

	var buf bytes.Buffer
	state, err := trace.New[roadmap.City, int](&buf).Run(e)
	require.NoError(t, err)
	require.Equal(t, astar.Failed, state)

	out := buf.String()
	assert.Contains(t, out, "Open list:\n\tEmpty\nOpen list has 0 nodes\n")
	assert.Contains(t, out, "Search terminated. Did not find goal state\n")
	assert.Contains(t, out, "Reason: "+astar.ErrNoPath.Error()+"\n")
	assert.True(t, strings.HasSuffix(out, "SearchSteps: 2\n"))
}

func TestPrinter_OutcomeWhileSearching(t *testing.T) {
	a, b := pair(t, roadmap.RoadConfig{From: "A", To: "B", Distance: 1})
	e := astar.New[roadmap.City, int]()
	require.NoError(t, e.Initialize(a, b))

	var buf bytes.Buffer
	require.NoError(t, trace.New[roadmap.City, int](&buf).Outcome(e))
	assert.Zero(t, buf.Len())
	e.Cancel()
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrinter_WriteError(t *testing.T) {
	a, b := pair(t, roadmap.RoadConfig{From: "A", To: "B", Distance: 1})
	e := astar.New[roadmap.City, int]()
	require.NoError(t, e.Initialize(a, b))

	state, err := trace.New[roadmap.City, int](failingWriter{}).Run(e)
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, astar.Searching, state)
	e.Cancel()
	assert.Zero(t, e.Stats().Outstanding)
}
