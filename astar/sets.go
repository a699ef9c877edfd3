package astar

import "container/heap"

// bucketIndex maps a state key to the handles holding states with that key.
// Buckets stay tiny for well-distributed keys; SameState resolves collisions.
type bucketIndex[K comparable] map[K][]nodeID

func (b bucketIndex[K]) add(k K, id nodeID) {
	b[k] = append(b[k], id)
}

func (b bucketIndex[K]) remove(k K, id nodeID) {
	ids := b[k]
	for i, v := range ids {
		if v != id {
			continue
		}
		last := len(ids) - 1
		ids[i] = ids[last]
		ids = ids[:last]
		break
	}
	if len(ids) == 0 {
		delete(b, k)
		return
	}
	b[k] = ids
}

// nodeHeap is the frontier ordering: a min-heap of handles on node.f.
// It keeps node.heapIndex current so heap.Fix can re-prioritize in place.
type nodeHeap[S any] struct {
	ids   []nodeID
	arena *arena[S]
}

// Len returns the number of frontier nodes.
func (h *nodeHeap[S]) Len() int { return len(h.ids) }

// Less orders by ascending f. Ties fall out of the heap layout.
func (h *nodeHeap[S]) Less(i, j int) bool {
	return h.arena.at(h.ids[i]).f < h.arena.at(h.ids[j]).f
}

// Swap exchanges two heap slots and their back-references.
func (h *nodeHeap[S]) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.arena.at(h.ids[i]).heapIndex = i
	h.arena.at(h.ids[j]).heapIndex = j
}

// Push appends a handle; called by heap.Push only.
func (h *nodeHeap[S]) Push(x any) {
	id := x.(nodeID)
	h.arena.at(id).heapIndex = len(h.ids)
	h.ids = append(h.ids, id)
}

// Pop removes the last handle; called by heap.Pop only.
func (h *nodeHeap[S]) Pop() any {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	h.arena.at(id).heapIndex = -1

	return id
}

// openSet is the frontier: nodes discovered but not yet expanded.
type openSet[S State[S, K], K comparable] struct {
	heap  nodeHeap[S]
	index bucketIndex[K]
}

func newOpenSet[S State[S, K], K comparable](a *arena[S]) openSet[S, K] {
	return openSet[S, K]{
		heap:  nodeHeap[S]{arena: a},
		index: make(bucketIndex[K]),
	}
}

func (o *openSet[S, K]) len() int { return o.heap.Len() }

func (o *openSet[S, K]) push(id nodeID) {
	n := o.heap.arena.at(id)
	n.where = placeOpen
	o.index.add(n.state.Key(), id)
	heap.Push(&o.heap, id)
}

// pop removes and returns the node with the lowest f. The node is detached.
func (o *openSet[S, K]) pop() nodeID {
	id := heap.Pop(&o.heap).(nodeID)
	n := o.heap.arena.at(id)
	o.index.remove(n.state.Key(), id)
	n.where = placeDetached

	return id
}

// fix restores the heap order after the node's f changed.
func (o *openSet[S, K]) fix(id nodeID) {
	heap.Fix(&o.heap, o.heap.arena.at(id).heapIndex)
}

// find returns the frontier node holding a state equal to s, or noNode.
func (o *openSet[S, K]) find(s S) nodeID {
	return findIn(o.index, o.heap.arena, s)
}

// drain empties the frontier and hands each node to fn.
func (o *openSet[S, K]) drain(fn func(nodeID)) {
	ids := o.heap.ids
	o.heap.ids = nil
	clear(o.index)
	for _, id := range ids {
		n := o.heap.arena.at(id)
		n.where = placeDetached
		n.heapIndex = -1
		fn(id)
	}
}

// closedSet is the expanded set. Removal order is not preserved.
type closedSet[S State[S, K], K comparable] struct {
	ids   []nodeID
	arena *arena[S]
	index bucketIndex[K]
}

func newClosedSet[S State[S, K], K comparable](a *arena[S]) closedSet[S, K] {
	return closedSet[S, K]{
		arena: a,
		index: make(bucketIndex[K]),
	}
}

func (c *closedSet[S, K]) len() int { return len(c.ids) }

func (c *closedSet[S, K]) add(id nodeID) {
	n := c.arena.at(id)
	n.where = placeClosed
	n.slot = len(c.ids)
	c.ids = append(c.ids, id)
	c.index.add(n.state.Key(), id)
}

// remove detaches id from the expanded set in O(1) by swapping in the last slot.
func (c *closedSet[S, K]) remove(id nodeID) {
	n := c.arena.at(id)
	last := len(c.ids) - 1
	moved := c.ids[last]
	c.ids[n.slot] = moved
	c.arena.at(moved).slot = n.slot
	c.ids = c.ids[:last]
	c.index.remove(n.state.Key(), id)
	n.where = placeDetached
	n.slot = -1
}

func (c *closedSet[S, K]) find(s S) nodeID {
	return findIn(c.index, c.arena, s)
}

func (c *closedSet[S, K]) drain(fn func(nodeID)) {
	ids := c.ids
	c.ids = nil
	clear(c.index)
	for _, id := range ids {
		n := c.arena.at(id)
		n.where = placeDetached
		n.slot = -1
		fn(id)
	}
}

func findIn[S State[S, K], K comparable](idx bucketIndex[K], a *arena[S], s S) nodeID {
	for _, id := range idx[s.Key()] {
		if a.at(id).state.SameState(s) {
			return id
		}
	}

	return noNode
}
