// Package astar implements a stepwise, generic A* best-first search engine.
//
// The engine knows nothing about the concrete graph. It drives the search
// through the State capability contract that the embedding application
// implements on its own value type: heuristic estimate, goal test, equality,
// edge cost and successor enumeration, plus a Key used to bucket states.
//
// The search is an explicit state machine:
//
//	NotInitialized ──Initialize──▶ Searching ──Step…──▶ Succeeded | Failed
//
// Each Step pops the frontier node with the lowest f = g + h, tests it against
// the goal and otherwise expands it. Successors that reach an already known
// state are consolidated: a cheaper path updates the frontier node in place or
// reopens the expanded node; an equal or worse path is discarded at once.
// Terminal states are idempotent.
//
// The stepwise API lets a game loop or planner spend a bounded budget per
// tick (RunFor). Solve runs a search to completion in one call.
//
// Node lifecycle:
//
//   - Nodes live in an arena and link to each other through integer handles.
//   - Every allocation is matched by exactly one free; Stats exposes the
//     counters and WithMaxNodes turns them into a hard budget.
//   - On success only the start→goal chain survives; it is walked with
//     SolutionStart/SolutionNext (or SolutionEnd/SolutionPrev) and handed
//     back with ReleaseSolution.
//   - On failure, or after Cancel, no node survives.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for a consistent heuristic, V distinct states
//     reached and E successor edges generated. Reopening under an
//     inconsistent heuristic can expand a state more than once.
//   - Space: O(V) live nodes plus the transient candidate buffer of one
//     expansion.
//
// Optimality requires an admissible heuristic and non-negative step costs.
// Neither is checked at runtime; violating them still yields Succeeded, but
// the path may not be the cheapest.
//
// Concurrency: an Engine is not safe for concurrent use. It spawns no
// goroutines and never blocks.
//
// Example usage:
//
//	e := astar.New[roadmap.City, int]()
//	if err := e.Initialize(from, to); err != nil {
//	    log.Fatal(err)
//	}
//	for e.Step() == astar.Searching {
//	}
//	if e.State() == astar.Succeeded {
//	    fmt.Println(e.SolutionCost(), e.Path())
//	    _ = e.ReleaseSolution()
//	}
package astar
