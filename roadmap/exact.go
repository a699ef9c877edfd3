package roadmap

import (
	"container/heap"
	"fmt"
	"math"
	"strings"
)

// DistancesTo returns, indexed by city id, the exact shortest road distance
// from every city to the named one; +Inf marks cities with no route.
//
// It runs a lazy Dijkstra from the destination over the reversed roads, so a
// single call answers "how far is the target" for the whole table.
// Complexity: O(C² log C) on the dense table.
func (t *Table) DistancesTo(name string) ([]float64, error) {
	to, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return t.distancesTo(to), nil
}

func (t *Table) distancesTo(to int) []float64 {
	n := len(t.names)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	visited := make([]bool, n)
	dist[to] = 0

	pq := make(distPQ, 0, n)
	heap.Push(&pq, distItem{id: to, dist: 0})
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		u := item.id
		if visited[u] {
			continue // stale entry
		}
		visited[u] = true

		// Relax every road v→u.
		for v := 0; v < n; v++ {
			w := t.dist[v][u]
			if math.IsInf(w, 1) || visited[v] {
				continue
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v] = nd
				heap.Push(&pq, distItem{id: v, dist: nd})
			}
		}
	}

	return dist
}

// CheckHeuristic verifies that no city's heuristic overestimates its exact
// distance to the target. A search over an inadmissible table still ends
// but may return a longer route than necessary.
// Returns ErrInadmissible naming the offending cities.
func (t *Table) CheckHeuristic() error {
	exact := t.distancesTo(t.target)

	var bad []string
	for id, h := range t.heuristic {
		if h > exact[id] && !math.IsInf(exact[id], 1) {
			bad = append(bad, fmt.Sprintf("%s (h=%g > %g)", t.names[id], h, exact[id]))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInadmissible, strings.Join(bad, ", "))
	}

	return nil
}

type distItem struct {
	id   int     // city id
	dist float64 // tentative distance to the destination
}

type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x any) { *pq = append(*pq, x.(distItem)) }

func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
