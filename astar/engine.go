package astar

import (
	"fmt"
	"log/slog"
)

// Engine runs one A* search over states of type S, one Step at a time.
//
// An Engine is single-use and single-owner: call Initialize once, then Step
// until a terminal state. Concurrent calls into one Engine are not supported.
type Engine[S State[S, K], K comparable] struct {
	options Options
	log     *slog.Logger

	state SearchState
	err   error

	arena      arena[S]
	open       openSet[S, K]
	closed     closedSet[S, K]
	candidates []nodeID

	start nodeID
	goal  nodeID
	cost  float64 // cached goal.g once Succeeded

	released bool // solution chain already handed back to the arena

	cursor       nodeID // solution cursor
	openCursor   int
	closedCursor int

	steps    int
	expanded int
}

// New returns an engine in the NotInitialized state.
//
// Options customization:
//
//   - WithMaxNodes(n): fail with ErrNodeLimit instead of exceeding n live nodes.
//   - WithCapacity(n): pre-size the node arena.
//   - WithLogger(l):   debug-level tracing of every step.
//   - WithHooks(h):    synchronous observers (see package metrics).
func New[S State[S, K], K comparable](opts ...Option) *Engine[S, K] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine[S, K]{
		options: cfg,
		log:     cfg.Logger,
		state:   NotInitialized,
		start:   noNode,
		goal:    noNode,
		cost:    Undefined,
		cursor:  noNode,
	}
	e.arena = newArena[S](cfg.Capacity, cfg.MaxNodes)
	e.open = newOpenSet[S, K](&e.arena)
	e.closed = newClosedSet[S, K](&e.arena)

	return e
}

// Initialize allocates the start and goal nodes, scores the start node and
// pushes it onto the frontier. It moves the engine to Searching.
//
// Returns ErrAlreadyInitialized on any engine that is not fresh, and
// ErrNodeLimit if the node budget cannot hold both endpoints. Either way the
// engine stays NotInitialized and no node remains live.
func (e *Engine[S, K]) Initialize(start, goal S) error {
	if e.state != NotInitialized {
		return ErrAlreadyInitialized
	}

	sid, err := e.arena.alloc(start)
	if err != nil {
		return err
	}
	gid, err := e.arena.alloc(goal)
	if err != nil {
		e.arena.release(sid)
		return err
	}

	e.start, e.goal = sid, gid
	e.arena.at(sid).setScores(0, start.EstimateRemainingCost(goal))
	e.open.push(sid)

	e.steps = 0
	e.state = Searching
	e.log.Debug("astar: initialized", "h", e.arena.at(sid).h)

	return nil
}

// Step advances the search by one node expansion and returns the new state.
//
// On a fresh engine it returns NotInitialized and does nothing. On a terminal
// engine it returns the terminal state and does nothing (no allocation, no
// free, no step counted).
func (e *Engine[S, K]) Step() SearchState {
	if e.state != Searching {
		return e.state
	}
	e.steps++

	// 1) Empty frontier: every reachable state was expanded.
	if e.open.len() == 0 {
		e.fail(ErrNoPath)
		return e.state
	}

	// 2) Best node by f.
	cur := e.open.pop()
	cn := e.arena.at(cur)
	goal := e.arena.at(e.goal).state

	// 3) Goal test.
	if cn.state.IsGoal(goal) {
		e.succeed(cur)
		return e.state
	}

	if h := e.options.Hooks.OnExpand; h != nil {
		h(e.steps, cn.scores())
	}
	e.log.Debug("astar: expand", "step", e.steps, "f", cn.f, "g", cn.g, "h", cn.h)

	// 4-5) Expand and relax every successor.
	if err := e.expand(cur, goal); err != nil {
		e.abort(cur, err)
		return e.state
	}

	// 6) The node is fully processed.
	e.closed.add(cur)
	e.expanded++

	return e.state
}

// RunFor calls Step at most budget times, stopping early at a terminal state.
// It is the per-tick driver for callers that interleave search with other work.
func (e *Engine[S, K]) RunFor(budget int) SearchState {
	for i := 0; i < budget && e.state == Searching; i++ {
		e.Step()
	}

	return e.state
}

// Cancel abandons the search and returns every outstanding node to the arena.
// A Searching engine becomes Failed with ErrCanceled. A Succeeded engine has
// its solution released. Other states are left as they are.
func (e *Engine[S, K]) Cancel() {
	switch e.state {
	case Searching:
		e.fail(ErrCanceled)
	case Succeeded:
		_ = e.ReleaseSolution()
	}
}

// expand fills the candidate buffer from cur's successors and relaxes each one.
// On error the buffer may still hold candidates; abort reclaims them.
func (e *Engine[S, K]) expand(cur nodeID, goal S) error {
	e.candidates = e.candidates[:0]

	cn := e.arena.at(cur)
	curState, curG := cn.state, cn.g
	var parentState *S
	if cn.parent != noNode {
		ps := e.arena.at(cn.parent).state
		parentState = &ps
	}

	successors, err := curState.Successors(parentState)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSuccessors, err)
	}

	for _, s := range successors {
		id, err := e.arena.alloc(s)
		if err != nil {
			return err
		}
		e.arena.at(id).where = placeCandidate
		e.candidates = append(e.candidates, id)
	}

	for _, id := range e.candidates {
		e.relax(cur, curState, curG, id, goal)
	}
	e.candidates = e.candidates[:0]

	return nil
}

// relax decides the fate of one candidate: discard it, merge it into an
// existing frontier or expanded node, or push it as a new frontier node.
// The candidate's slot is consumed in every branch.
func (e *Engine[S, K]) relax(cur nodeID, curState S, curG float64, id nodeID, goal S) {
	cand := e.arena.at(id)
	newg := curG + curState.StepCost(cand.state)

	// The node being expanded sits in neither set. A move back onto it can
	// never be cheaper than its own g.
	if cand.state.SameState(curState) {
		e.discard(id, e.arena.at(cur).scores())
		return
	}

	openHit := e.open.find(cand.state)
	if openHit != noNode && e.arena.at(openHit).g <= newg {
		e.discard(id, e.arena.at(openHit).scores())
		return
	}

	closedHit := e.closed.find(cand.state)
	if closedHit != noNode && e.arena.at(closedHit).g <= newg {
		e.discard(id, e.arena.at(closedHit).scores())
		return
	}

	h := cand.state.EstimateRemainingCost(goal)

	var kind RelaxKind
	var target nodeID
	switch {
	case closedHit != noNode:
		// Cheaper path to an expanded state: reopen it.
		target, kind = closedHit, RelaxReopened
		n := e.arena.at(target)
		n.parent = cur
		n.setScores(newg, h)
		e.arena.release(id)
		e.closed.remove(target)
		e.open.push(target)
	case openHit != noNode:
		target, kind = openHit, RelaxUpdated
		n := e.arena.at(target)
		n.parent = cur
		n.setScores(newg, h)
		e.arena.release(id)
		e.open.fix(target)
	default:
		target, kind = id, RelaxInserted
		cand.parent = cur
		cand.setScores(newg, h)
		e.open.push(id)
	}

	sc := e.arena.at(target).scores()
	if hook := e.options.Hooks.OnRelax; hook != nil {
		hook(kind, sc)
	}
	if kind == RelaxReopened {
		e.log.Debug("astar: reopened", "g", sc.G, "f", sc.F)
	}
}

func (e *Engine[S, K]) discard(id nodeID, existing Scores) {
	e.arena.release(id)
	if hook := e.options.Hooks.OnRelax; hook != nil {
		hook(RelaxDiscarded, existing)
	}
}

// succeed finalizes a search whose popped node cur met the goal test.
func (e *Engine[S, K]) succeed(cur nodeID) {
	c := e.arena.at(cur)
	parent, g := c.parent, c.g

	gn := e.arena.at(e.goal)
	gn.parent = parent
	gn.setScores(g, 0)

	// When the start itself is the goal there is no chain to link, and the
	// popped node is the start node, which must survive.
	if cur != e.start {
		e.arena.release(cur)
		e.link()
	}

	e.reclaimUnused()

	e.cost = g
	e.state = Succeeded
	e.log.Debug("astar: succeeded", "steps", e.steps, "cost", g, "live", e.arena.live())
	e.finish()
}

// link sets child pointers along the parent chain from goal back to start.
func (e *Engine[S, K]) link() {
	child := e.goal
	for p := e.arena.at(e.goal).parent; p != noNode; {
		pn := e.arena.at(p)
		pn.child = child
		if p == e.start {
			return
		}
		child, p = p, pn.parent
	}
}

// reclaimUnused frees every frontier and expanded node that is not on the
// solution chain. Chain nodes stay live and detached.
func (e *Engine[S, K]) reclaimUnused() {
	keepChain := func(id nodeID) {
		if e.arena.at(id).child == noNode {
			e.arena.release(id)
		}
	}
	e.open.drain(keepChain)
	e.closed.drain(keepChain)
}

// abort fails the search from inside an expansion: the pending candidates and
// the popped node are owned by no set and are freed here.
func (e *Engine[S, K]) abort(cur nodeID, err error) {
	for _, id := range e.candidates {
		e.arena.release(id)
	}
	e.candidates = e.candidates[:0]
	e.arena.release(cur)
	e.fail(err)
}

// fail frees every node still owned by the search and moves to Failed.
func (e *Engine[S, K]) fail(err error) {
	e.open.drain(e.arena.release)
	e.closed.drain(e.arena.release)
	if e.goal != noNode {
		e.arena.release(e.goal)
	}
	e.start, e.goal, e.cursor = noNode, noNode, noNode

	e.err = err
	e.state = Failed
	e.log.Debug("astar: failed", "steps", e.steps, "err", err, "live", e.arena.live())
	e.finish()
}

func (e *Engine[S, K]) finish() {
	if hook := e.options.Hooks.OnFinish; hook != nil {
		hook(e.state, e.steps, e.SolutionCost())
	}
}

// State returns the current state-machine position.
func (e *Engine[S, K]) State() SearchState { return e.state }

// Err returns why the search Failed, or nil.
func (e *Engine[S, K]) Err() error { return e.err }

// StepCount returns the number of Step calls that did work since Initialize.
func (e *Engine[S, K]) StepCount() int { return e.steps }

// Expanded returns how many nodes were moved into the expanded set.
func (e *Engine[S, K]) Expanded() int { return e.expanded }

// Stats returns the node accounting snapshot.
func (e *Engine[S, K]) Stats() Stats { return e.arena.stats() }

// SolutionCost returns the cost of the solution when Succeeded, or Undefined.
func (e *Engine[S, K]) SolutionCost() float64 {
	if e.state != Succeeded {
		return Undefined
	}

	return e.cost
}
