package astar

import "iter"

// hasSolution reports whether a linked solution chain is live.
func (e *Engine[S, K]) hasSolution() bool {
	return e.state == Succeeded && !e.released
}

// SolutionStart resets the solution cursor to the start node and returns its
// state. ok is false when there is no live solution.
func (e *Engine[S, K]) SolutionStart() (s S, ok bool) {
	if !e.hasSolution() {
		return s, false
	}
	e.cursor = e.start

	return e.arena.at(e.start).state, true
}

// SolutionNext advances the cursor along child links. ok is false at the goal
// end of the chain, in which case the cursor does not move.
func (e *Engine[S, K]) SolutionNext() (s S, ok bool) {
	if !e.hasSolution() || e.cursor == noNode {
		return s, false
	}
	next := e.arena.at(e.cursor).child
	if next == noNode {
		return s, false
	}
	e.cursor = next

	return e.arena.at(next).state, true
}

// SolutionEnd resets the solution cursor to the goal node and returns its state.
func (e *Engine[S, K]) SolutionEnd() (s S, ok bool) {
	if !e.hasSolution() {
		return s, false
	}
	e.cursor = e.goal

	return e.arena.at(e.goal).state, true
}

// SolutionPrev moves the cursor back along parent links.
func (e *Engine[S, K]) SolutionPrev() (s S, ok bool) {
	if !e.hasSolution() || e.cursor == noNode {
		return s, false
	}
	prev := e.arena.at(e.cursor).parent
	if prev == noNode {
		return s, false
	}
	e.cursor = prev

	return e.arena.at(prev).state, true
}

// Path returns the solution states from start to goal without touching the
// solution cursor. A start that already satisfies the goal yields one state.
// It returns nil when there is no live solution.
func (e *Engine[S, K]) Path() []S {
	if !e.hasSolution() {
		return nil
	}
	var path []S
	for id := e.start; id != noNode; id = e.arena.at(id).child {
		path = append(path, e.arena.at(id).state)
	}

	return path
}

// ReleaseSolution frees every node on the solution chain, both endpoints
// included. Afterwards Stats().Outstanding is 0 and the solution accessors
// report nothing; SolutionCost stays available.
func (e *Engine[S, K]) ReleaseSolution() error {
	if !e.hasSolution() {
		return ErrNoSolution
	}

	goalFreed := false
	for id := e.start; id != noNode; {
		next := e.arena.at(id).child
		if id == e.goal {
			goalFreed = true
		}
		e.arena.release(id)
		id = next
	}
	if !goalFreed {
		e.arena.release(e.goal)
	}

	e.start, e.goal, e.cursor = noNode, noNode, noNode
	e.released = true
	e.log.Debug("astar: solution released", "live", e.arena.live())

	return nil
}

// OpenLen returns the number of frontier nodes.
func (e *Engine[S, K]) OpenLen() int { return e.open.len() }

// ClosedLen returns the number of expanded nodes.
func (e *Engine[S, K]) ClosedLen() int { return e.closed.len() }

// OpenStart resets the frontier cursor and returns the first frontier node.
// Frontier order is the heap layout: the first node has the lowest f, the
// rest are unordered.
func (e *Engine[S, K]) OpenStart() (S, Scores, bool) {
	e.openCursor = 0
	return e.openAt(e.openCursor)
}

// OpenNext returns the next frontier node.
func (e *Engine[S, K]) OpenNext() (S, Scores, bool) {
	e.openCursor++
	return e.openAt(e.openCursor)
}

func (e *Engine[S, K]) openAt(i int) (s S, sc Scores, ok bool) {
	if i < 0 || i >= len(e.open.heap.ids) {
		return s, sc, false
	}
	n := e.arena.at(e.open.heap.ids[i])

	return n.state, n.scores(), true
}

// ClosedStart resets the expanded-set cursor and returns its first node.
func (e *Engine[S, K]) ClosedStart() (S, Scores, bool) {
	e.closedCursor = 0
	return e.closedAt(e.closedCursor)
}

// ClosedNext returns the next expanded node.
func (e *Engine[S, K]) ClosedNext() (S, Scores, bool) {
	e.closedCursor++
	return e.closedAt(e.closedCursor)
}

func (e *Engine[S, K]) closedAt(i int) (s S, sc Scores, ok bool) {
	if i < 0 || i >= len(e.closed.ids) {
		return s, sc, false
	}
	n := e.arena.at(e.closed.ids[i])

	return n.state, n.scores(), true
}

// Frontier iterates the frontier in the same order as OpenStart/OpenNext
// without disturbing that cursor. The engine must not be stepped during
// iteration.
func (e *Engine[S, K]) Frontier() iter.Seq2[S, Scores] {
	return func(yield func(S, Scores) bool) {
		for _, id := range e.open.heap.ids {
			n := e.arena.at(id)
			if !yield(n.state, n.scores()) {
				return
			}
		}
	}
}

// Explored iterates the expanded set like ClosedStart/ClosedNext.
func (e *Engine[S, K]) Explored() iter.Seq2[S, Scores] {
	return func(yield func(S, Scores) bool) {
		for _, id := range e.closed.ids {
			n := e.arena.at(id)
			if !yield(n.state, n.scores()) {
				return
			}
		}
	}
}
