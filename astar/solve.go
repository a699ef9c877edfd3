package astar

import "fmt"

// Result contains the outcome of a search run to completion by Solve.
type Result[S any] struct {
	Path     []S     // start..goal; a single state when start is the goal
	Cost     float64 // total cost of Path
	Steps    int     // Step invocations that did work
	Expanded int     // nodes moved into the expanded set
	Peak     int     // largest number of simultaneously live nodes
}

// Solve runs a complete search from start to goal and returns the path.
//
// It drives a fresh Engine until a terminal state, copies the solution out and
// releases every node. On failure it returns the Engine's Err (ErrNoPath,
// ErrNodeLimit, a wrapped ErrSuccessors...) together with the partial
// counters.
//
// Complexity: O((V + E) log V) with an admissible, consistent heuristic,
// where V is the number of distinct reachable states.
func Solve[S State[S, K], K comparable](start, goal S, opts ...Option) (Result[S], error) {
	e := New[S, K](opts...)
	if err := e.Initialize(start, goal); err != nil {
		return Result[S]{}, fmt.Errorf("astar: initialize: %w", err)
	}

	for e.Step() == Searching {
	}

	res := Result[S]{
		Steps:    e.StepCount(),
		Expanded: e.Expanded(),
		Peak:     e.Stats().Peak,
		Cost:     e.SolutionCost(),
	}
	if e.State() != Succeeded {
		return res, e.Err()
	}

	res.Path = e.Path()
	if err := e.ReleaseSolution(); err != nil {
		return res, err
	}

	return res, nil
}
