// File: view.go
// Role: Read-only derived views: reachability and induced subgraphs.
// Determinism:
//   - Reachable visits neighbors in To-ascending order, so its order is stable.
// Concurrency:
//   - Read locks only; the source graph is never mutated.

package core

// Reachable returns every node reachable from source by following directed
// links, in breadth-first visit order starting with source itself.
//
// If usable is non-nil, a link is followed only when usable returns true for
// it; this is how callers treat down links (e.g. cost ≥ an infinity sentinel)
// as absent.
//
// Errors:
//   - ErrEmptyNodeID: if source == "".
//   - ErrNodeNotFound: if source is absent.
//
// Complexity: O(V + E log d).
func Reachable(g *Graph, source string, usable func(Link) bool) ([]string, error) {
	if source == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(source) {
		return nil, ErrNodeNotFound
	}

	seen := map[string]bool{source: true}
	order := []string{source}
	queue := []string{source}

	var (
		cur   string
		links []Link
		err   error
	)
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		if links, err = g.Neighbors(cur); err != nil {
			return nil, err
		}
		for _, l := range links {
			if seen[l.To] || (usable != nil && !usable(l)) {
				continue
			}
			seen[l.To] = true
			order = append(order, l.To)
			queue = append(queue, l.To)
		}
	}

	return order, nil
}

// InducedSubgraph returns a new Graph holding only the nodes for which keep is
// true and the links whose endpoints are both kept. g is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowLoops: g.allowLoops,
		adjacency:  make(map[string]map[string]int64),
	}
	for id, nbrs := range g.adjacency {
		if !keep[id] {
			continue
		}
		row := make(map[string]int64)
		for to, c := range nbrs {
			if keep[to] {
				row[to] = c
				out.linkCount++
			}
		}
		out.adjacency[id] = row
	}

	return out
}
