package astar

import "fmt"

// nodeID is a stable handle into the node arena. Handles are reused after a
// node is freed, so a handle is only meaningful while its node is live.
type nodeID int32

// noNode is the "none" handle for parent/child links.
const noNode nodeID = -1

// placement records which collection currently owns a node.
type placement uint8

const (
	placeFree      placement = iota // slot sits on the free list
	placeDetached                   // live, owned by the engine directly (start/goal/popped/solution chain)
	placeCandidate                  // in the candidate buffer of the running expansion
	placeOpen                       // in the frontier heap
	placeClosed                     // in the expanded set
)

// node pairs a user state with search bookkeeping.
type node[S any] struct {
	state  S
	g      float64 // cost from start
	h      float64 // heuristic to goal
	f      float64 // g + h
	parent nodeID
	child  nodeID

	where     placement
	heapIndex int // position in the frontier heap while placeOpen
	slot      int // position in the closed slice while placeClosed
}

// setScores is the single writer of g/h so that f == g + h always holds.
func (n *node[S]) setScores(g, h float64) {
	n.g = g
	n.h = h
	n.f = g + h
}

func (n *node[S]) scores() Scores {
	return Scores{F: n.f, G: n.g, H: n.h}
}

// arena owns every node of one engine and keeps the allocation counters.
type arena[S any] struct {
	nodes []node[S]
	free  []nodeID // LIFO free list

	limit     int // 0 = unlimited
	allocated int
	freed     int
	peak      int
}

func newArena[S any](capacity, limit int) arena[S] {
	return arena[S]{
		nodes: make([]node[S], 0, capacity),
		limit: limit,
	}
}

// live returns the number of outstanding nodes.
func (a *arena[S]) live() int { return a.allocated - a.freed }

// alloc returns a fresh detached node holding state, or ErrNodeLimit.
func (a *arena[S]) alloc(state S) (nodeID, error) {
	if a.limit > 0 && a.live() >= a.limit {
		return noNode, fmt.Errorf("%w: %d live nodes", ErrNodeLimit, a.live())
	}

	var id nodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[S]{})
		id = nodeID(len(a.nodes) - 1)
	}

	a.nodes[id] = node[S]{
		state:     state,
		parent:    noNode,
		child:     noNode,
		where:     placeDetached,
		heapIndex: -1,
		slot:      -1,
	}
	a.allocated++
	if l := a.live(); l > a.peak {
		a.peak = l
	}

	return id, nil
}

// release frees a live node exactly once. Releasing a free slot is a bug in
// the engine and panics so that double frees never go unnoticed.
func (a *arena[S]) release(id nodeID) {
	n := &a.nodes[id]
	if n.where == placeFree {
		panic(fmt.Sprintf("astar: node %d freed twice", id))
	}
	var zero S
	*n = node[S]{state: zero, parent: noNode, child: noNode, where: placeFree, heapIndex: -1, slot: -1}
	a.free = append(a.free, id)
	a.freed++
}

// at returns a pointer to the node behind id. The pointer is invalidated by
// the next alloc.
func (a *arena[S]) at(id nodeID) *node[S] { return &a.nodes[id] }

func (a *arena[S]) stats() Stats {
	return Stats{
		Allocated:   a.allocated,
		Freed:       a.freed,
		Outstanding: a.live(),
		Peak:        a.peak,
	}
}
