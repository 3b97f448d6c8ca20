// File: methods_clone.go
// Role: Snapshots (Clone, CloneEmpty, Clear) and CostMap conversion.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import (
	"fmt"
	"sort"
)

// CloneEmpty returns a Graph with the same configuration and nodes, but no links.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		adjacency:  make(map[string]map[string]int64, len(g.adjacency)),
	}
	for id := range g.adjacency {
		clone.adjacency[id] = make(map[string]int64)
	}

	return clone
}

// Clone returns a deep copy of the Graph. Later mutations of either graph are
// invisible to the other, which is what lets a solver or service hold an
// immutable snapshot of a topology that keeps changing.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		adjacency:  make(map[string]map[string]int64, len(g.adjacency)),
		linkCount:  g.linkCount,
	}
	for id, nbrs := range g.adjacency {
		cp := make(map[string]int64, len(nbrs))
		for to, c := range nbrs {
			cp[to] = c
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// Clear drops every node and link, preserving configuration.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[string]map[string]int64)
	g.linkCount = 0
}

// CostMap exports the topology as a freshly allocated CostMap. Every node is
// a key, including nodes without outgoing links.
// Complexity: O(V + E).
func (g *Graph) CostMap() CostMap {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cm := make(CostMap, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		row := make(map[string]int64, len(nbrs))
		for to, c := range nbrs {
			row[to] = c
		}
		cm[id] = row
	}

	return cm
}

// FromCostMap validates cm and builds a Graph from it. cm itself is not
// retained or modified.
//
// Validation (keys visited in sorted order, so the reported error is stable):
//  1. Every key must be non-empty (ErrEmptyNodeID).
//  2. Every neighbor must itself be a key (ErrDanglingNeighbor).
//  3. Every cost must be ≥ 0 (ErrNegativeCost).
//  4. A self link must cost 0 (ErrSelfLoop); zero-cost self links are kept.
//
// Complexity: O(V log V + E log E).
func FromCostMap(cm CostMap) (*Graph, error) {
	g := NewGraph(WithLoops())

	ids := make([]string, 0, len(cm))
	for id := range cm {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		g.adjacency[id] = make(map[string]int64, len(cm[id]))
	}

	var (
		nbrs []string
		c    int64
	)
	for _, id := range ids {
		row := cm[id]
		nbrs = nbrs[:0]
		for to := range row {
			nbrs = append(nbrs, to)
		}
		sort.Strings(nbrs)

		for _, to := range nbrs {
			c = row[to]
			if _, ok := cm[to]; !ok {
				return nil, fmt.Errorf("%w: %s lists %q", ErrDanglingNeighbor, id, to)
			}
			if c < 0 {
				return nil, fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, id, to, c)
			}
			if id == to && c != 0 {
				return nil, fmt.Errorf("%w: %s→%s cost=%d", ErrSelfLoop, id, to, c)
			}
			g.adjacency[id][to] = c
			g.linkCount++
		}
	}

	return g, nil
}
