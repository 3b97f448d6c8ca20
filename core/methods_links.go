// File: methods_links.go
// Role: Link catalog (AddLink, AddBidirectional, RemoveLink, HasLink, Cost,
// Links, Neighbors, LinkCount).
// Determinism:
//   - Links() sorts by (From, To) asc.
//   - Neighbors() sorts by To asc.
// Concurrency:
//   - Readers hold g.mu.RLock; mutators hold g.mu.Lock.

package core

import (
	"fmt"
	"sort"
)

// AddLink records the directed link from→to with the given cost, creating
// either endpoint if it does not exist yet. Re-adding an existing link
// replaces its cost; the reverse direction is untouched.
//
// Errors:
//   - ErrEmptyNodeID: if from or to is empty.
//   - ErrNegativeCost: if cost < 0.
//   - ErrSelfLoop: if from == to and loops are disabled or cost != 0.
//
// Complexity: O(1).
func (g *Graph) AddLink(from, to string, cost int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && (!g.allowLoops || cost != 0) {
		return fmt.Errorf("%w: %s→%s cost=%d", ErrSelfLoop, from, to, cost)
	}

	nbrs := g.ensureNode(from)
	g.ensureNode(to)
	if _, ok := nbrs[to]; !ok {
		g.linkCount++
	}
	nbrs[to] = cost

	return nil
}

// AddBidirectional records a↔b with the same cost in both directions, the
// common case for point-to-point links. Either both directions are stored or
// neither is.
func (g *Graph) AddBidirectional(a, b string, cost int64) error {
	if a == b {
		return g.AddLink(a, b, cost)
	}
	if err := g.AddLink(a, b, cost); err != nil {
		return err
	}

	return g.AddLink(b, a, cost)
}

// RemoveLink deletes the directed link from→to.
//
// Errors:
//   - ErrEmptyNodeID: if from or to is empty.
//   - ErrLinkNotFound: if the link is absent.
func (g *Graph) RemoveLink(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[from]
	if !ok {
		return ErrLinkNotFound
	}
	if _, ok = nbrs[to]; !ok {
		return ErrLinkNotFound
	}
	delete(nbrs, to)
	g.linkCount--

	return nil
}

// HasLink reports whether the directed link from→to exists.
func (g *Graph) HasLink(from, to string) bool {
	_, ok := g.Cost(from, to)

	return ok
}

// Cost returns the cost of the directed link from→to and whether it exists.
// Complexity: O(1).
func (g *Graph) Cost(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.adjacency[from][to]

	return c, ok
}

// LinkCount returns the number of directed links.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.linkCount
}

// Links returns every directed link sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, 0, g.linkCount)
	for from, nbrs := range g.adjacency {
		for to, c := range nbrs {
			out = append(out, Link{From: from, To: to, Cost: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Neighbors returns the outgoing links of id sorted by To. Self links are
// included when present.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if id is absent.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Link, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Link, 0, len(nbrs))
	for to, c := range nbrs {
		out = append(out, Link{From: id, To: to, Cost: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}
