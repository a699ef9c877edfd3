// Package astar defines the capability contract, search states, sentinel
// errors and configuration options for the stepwise A* engine.
//
// Errors (sentinel):
//
//	– ErrAlreadyInitialized if Initialize is called twice on one Engine.
//	– ErrNotInitialized     if an operation needs Initialize first.
//	– ErrNoPath             if the frontier drained without reaching the goal.
//	– ErrNodeLimit          if the node budget (WithMaxNodes) was exhausted.
//	– ErrSuccessors         if the state's Successors call reported a failure.
//	– ErrCanceled           if the caller abandoned the search with Cancel.
//	– ErrNoSolution         if a solution accessor is used without a live solution.
//	– ErrBadMaxNodes        if WithMaxNodes receives a non-positive value.
package astar

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Undefined is returned by SolutionCost while no solution is available.
// Callers must check State before trusting a cost.
const Undefined = math.MaxFloat64

// Sentinel errors returned by the engine.
var (
	// ErrAlreadyInitialized indicates Initialize was called on an engine that
	// already holds a search. An Engine drives exactly one search.
	ErrAlreadyInitialized = errors.New("astar: engine already initialized")

	// ErrNotInitialized indicates an operation that requires Initialize first.
	ErrNotInitialized = errors.New("astar: engine not initialized")

	// ErrNoPath indicates the frontier was exhausted without meeting the goal.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrNodeLimit indicates node allocation failed because the configured
	// budget of live nodes was reached.
	ErrNodeLimit = errors.New("astar: node limit reached")

	// ErrSuccessors wraps a failure reported by State.Successors.
	ErrSuccessors = errors.New("astar: successor enumeration failed")

	// ErrCanceled indicates the caller abandoned the search via Cancel.
	ErrCanceled = errors.New("astar: search canceled")

	// ErrNoSolution indicates there is no solution chain to operate on.
	ErrNoSolution = errors.New("astar: no solution available")

	// ErrBadMaxNodes indicates WithMaxNodes was given a value < 1.
	ErrBadMaxNodes = errors.New("astar: MaxNodes must be positive")
)

// State is the capability contract a user state type must satisfy.
//
// S is the concrete state type itself (usually a small value type) and K is a
// comparable key used to bucket states for duplicate detection. Key may be
// coarse (a hash); SameState has the final word inside a bucket. Two states
// for which SameState reports true MUST return equal keys, and MUST agree on
// IsGoal.
//
// Preconditions that are not checked at runtime:
//   - EstimateRemainingCost never exceeds the true remaining cost (admissible);
//     otherwise the result is still reported as Succeeded but may be suboptimal.
//   - EstimateRemainingCost and StepCost are non-negative.
type State[S any, K comparable] interface {
	// EstimateRemainingCost returns the heuristic cost from this state to goal.
	EstimateRemainingCost(goal S) float64

	// IsGoal reports whether this state satisfies the goal test.
	IsGoal(goal S) bool

	// SameState reports whether this state and other are the same search state.
	SameState(other S) bool

	// StepCost returns the cost of moving from this state to successor.
	StepCost(successor S) float64

	// Successors returns every state reachable in one move. parent is the
	// state this one was reached from, or nil for the start state. The
	// returned slice is consumed entirely before the engine proceeds. A non-nil
	// error aborts the expansion and fails the search.
	Successors(parent *S) ([]S, error)

	// Key returns the bucketing key of this state.
	Key() K
}

// SearchState is the engine's state-machine position.
type SearchState int

const (
	// NotInitialized is the state of a fresh engine before Initialize.
	NotInitialized SearchState = iota
	// Searching means Step may be called to make progress.
	Searching
	// Succeeded means the goal was reached; the solution chain is available.
	Succeeded
	// Failed means the search ended without a solution; see Engine.Err.
	Failed
)

// String returns a human-readable name of the state.
func (s SearchState) String() string {
	switch s {
	case NotInitialized:
		return "not-initialized"
	case Searching:
		return "searching"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further progress is possible.
func (s SearchState) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Scores carries the bookkeeping of a node as seen by diagnostic cursors.
type Scores struct {
	F float64 // total priority, G + H
	G float64 // accumulated cost from start
	H float64 // heuristic estimate to goal
}

// Stats is a snapshot of node accounting.
//
// Outstanding == Allocated - Freed at all times. While Searching it equals
// OpenLen + ClosedLen + 1 (the goal node). After ReleaseSolution, Cancel or a
// failed search it is 0.
type Stats struct {
	Allocated   int // nodes allocated since Initialize
	Freed       int // nodes returned to the arena
	Outstanding int // live nodes
	Peak        int // high-water mark of Outstanding
}

// RelaxKind classifies the outcome of considering one successor.
type RelaxKind int

const (
	// RelaxDiscarded means an equal state already had g <= newg.
	RelaxDiscarded RelaxKind = iota
	// RelaxInserted means the successor was a new state pushed to the frontier.
	RelaxInserted
	// RelaxUpdated means a frontier node was improved in place.
	RelaxUpdated
	// RelaxReopened means an expanded node was improved and moved back to the frontier.
	RelaxReopened
)

// String returns the label used in logs and metrics.
func (k RelaxKind) String() string {
	switch k {
	case RelaxDiscarded:
		return "discarded"
	case RelaxInserted:
		return "inserted"
	case RelaxUpdated:
		return "updated"
	case RelaxReopened:
		return "reopened"
	default:
		return "unknown"
	}
}

// Hooks are optional callbacks invoked synchronously from Step. They observe
// the search and must not call back into the engine.
type Hooks struct {
	// OnExpand is called when a popped node is about to be expanded.
	OnExpand func(step int, sc Scores)

	// OnRelax is called once per successor with the decision taken for it.
	OnRelax func(kind RelaxKind, sc Scores)

	// OnFinish is called once when the search reaches a terminal state.
	// cost is Undefined unless state is Succeeded.
	OnFinish func(state SearchState, steps int, cost float64)
}

// Options configures an Engine.
//
// MaxNodes — maximum number of live nodes; 0 means unlimited.
// Capacity — initial arena capacity hint.
// Logger   — structured logger; debug level traces every step.
// Hooks    — optional observers.
type Options struct {
	MaxNodes int
	Capacity int
	Logger   *slog.Logger
	Hooks    Hooks
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithMaxNodes bounds the number of live nodes. When an allocation would
// exceed the bound, the current step aborts and the search fails with
// ErrNodeLimit. New panics if n < 1.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxNodes.Error())
		}
		o.MaxNodes = n
	}
}

// WithCapacity pre-sizes the node arena. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks installs observer callbacks.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

// DefaultOptions returns Options with no node limit, a small arena and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MaxNodes: 0,
		Capacity: 64,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
