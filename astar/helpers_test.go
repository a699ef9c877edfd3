package astar_test

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/astar"
)

// testGraph is a directed weighted graph keyed by vertex name.
type testGraph struct {
	edges  map[string]map[string]float64
	h      map[string]float64 // heuristic toward goal; missing = 0
	failAt string             // Successors of this vertex returns errBoom
}

var errBoom = errors.New("boom")

func newTestGraph() *testGraph {
	return &testGraph{
		edges: make(map[string]map[string]float64),
		h:     make(map[string]float64),
	}
}

func (g *testGraph) edge(from, to string, w float64) *testGraph {
	if g.edges[from] == nil {
		g.edges[from] = make(map[string]float64)
	}
	g.edges[from][to] = w

	return g
}

func (g *testGraph) v(id string) vertex { return vertex{id: id, g: g} }

// vertex implements astar.State over testGraph.
type vertex struct {
	id string
	g  *testGraph
}

func (v vertex) EstimateRemainingCost(goal vertex) float64 { return v.g.h[v.id] }
func (v vertex) IsGoal(goal vertex) bool                   { return v.id == goal.id }
func (v vertex) SameState(o vertex) bool                   { return v.id == o.id }
func (v vertex) Key() string                               { return v.id }

func (v vertex) StepCost(s vertex) float64 {
	w, ok := v.g.edges[v.id][s.id]
	if !ok {
		return math.Inf(1)
	}

	return w
}

func (v vertex) Successors(_ *vertex) ([]vertex, error) {
	if v.g.failAt != "" && v.id == v.g.failAt {
		return nil, errBoom
	}
	names := make([]string, 0, len(v.g.edges[v.id]))
	for to := range v.g.edges[v.id] {
		names = append(names, to)
	}
	sort.Strings(names)
	out := make([]vertex, len(names))
	for i, n := range names {
		out[i] = v.g.v(n)
	}

	return out, nil
}

// diamond is A→B(1), A→C(4), B→D(1), C→D(1) with h ≡ 0.
func diamond() *testGraph {
	return newTestGraph().
		edge("A", "B", 1).
		edge("A", "C", 4).
		edge("B", "D", 1).
		edge("C", "D", 1)
}

// reopener forces an expanded node to be reopened: h(A)=5 is admissible but
// inconsistent, so B is expanded through S→B(3) before the cheaper S→A→B(2).
func reopener() *testGraph {
	g := newTestGraph().
		edge("S", "A", 1).
		edge("S", "B", 3).
		edge("A", "B", 1).
		edge("B", "G", 5)
	g.h["A"] = 5

	return g
}

func ids(path []vertex) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = v.id
	}

	return out
}

// runToEnd steps e until a terminal state, asserting the accounting invariant
// at every step boundary through check.
func runToEnd(e *astar.Engine[vertex, string], check func()) astar.SearchState {
	for {
		s := e.Step()
		if check != nil {
			check()
		}
		if s != astar.Searching {
			return s
		}
	}
}

// shortest computes all-pairs shortest paths with Floyd–Warshall as an oracle.
func shortest(g *testGraph, names []string) map[string]map[string]float64 {
	d := make(map[string]map[string]float64, len(names))
	for _, a := range names {
		d[a] = make(map[string]float64, len(names))
		for _, b := range names {
			switch {
			case a == b:
				d[a][b] = 0
			default:
				if w, ok := g.edges[a][b]; ok {
					d[a][b] = w
				} else {
					d[a][b] = math.Inf(1)
				}
			}
		}
	}
	for _, k := range names {
		for _, i := range names {
			for _, j := range names {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

func vertexNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "V" + strconv.Itoa(i)
	}

	return out
}
