package spf

import "container/heap"

// frontier picks the next node to settle out of the tentative set.
//
// Both implementations order by (cost, node ID), so the settle order is fully
// determined by the graph and never by map iteration.
type frontier interface {
	// offer is called every time tentative[id] improves to cost.
	offer(id string, cost int64)

	// next returns the cheapest tentative node, or false when none is left.
	next(tentative map[string]Route) (string, bool)
}

func newFrontier(s Selection, capacity int) frontier {
	if s == SelectLinear {
		return linearFrontier{}
	}
	pq := make(entryPQ, 0, capacity)
	heap.Init(&pq)

	return &heapFrontier{pq: pq}
}

// linearFrontier scans the tentative map on every call.
type linearFrontier struct{}

func (linearFrontier) offer(string, int64) {}

func (linearFrontier) next(tentative map[string]Route) (string, bool) {
	var (
		best  string
		bestC int64
		found bool
	)
	for id, rt := range tentative {
		if !found || rt.Cost < bestC || (rt.Cost == bestC && id < best) {
			best, bestC, found = id, rt.Cost, true
		}
	}

	return best, found
}

// heapFrontier keeps a lazy min-heap: improved nodes are pushed again and the
// outdated entries are discarded when they surface.
type heapFrontier struct {
	pq entryPQ
}

func (h *heapFrontier) offer(id string, cost int64) {
	heap.Push(&h.pq, entry{id: id, cost: cost})
}

func (h *heapFrontier) next(tentative map[string]Route) (string, bool) {
	for h.pq.Len() > 0 {
		e := heap.Pop(&h.pq).(entry)
		// Stale if the node was settled already or improved after this push.
		if rt, ok := tentative[e.id]; ok && rt.Cost == e.cost {
			return e.id, true
		}
	}

	return "", false
}

// entry is one heap record: a node and the tentative cost it was pushed with.
type entry struct {
	id   string
	cost int64
}

// entryPQ is a min-heap of entry ordered by cost, then node ID.
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].id < pq[j].id
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
