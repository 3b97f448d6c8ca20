// File: methods_nodes.go
// Role: Node catalog (AddNode, HasNode, RemoveNode, Nodes, NodeCount).
// Determinism:
//   - Nodes() returns IDs sorted lex asc.
// Concurrency:
//   - Readers hold g.mu.RLock; mutators hold g.mu.Lock.

package core

import "sort"

// AddNode inserts a node with no links. Adding an existing node is a no-op.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)

	return nil
}

// HasNode reports whether id is part of the topology.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// RemoveNode deletes id together with every link into or out of it.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if id is absent.
//
// Complexity: O(V) to purge incoming links.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adjacency[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.linkCount -= len(out)
	delete(g.adjacency, id)

	// Incoming links live in the other nodes' buckets.
	for _, nbrs := range g.adjacency {
		if _, ok = nbrs[id]; ok {
			delete(nbrs, id)
			g.linkCount--
		}
	}

	return nil
}

// Nodes returns every node ID sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ensureNode creates an empty adjacency bucket for id. Caller holds g.mu.
func (g *Graph) ensureNode(id string) map[string]int64 {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[string]int64)
		g.adjacency[id] = nbrs
	}

	return nbrs
}
