// Package core defines the link-state topology snapshot: a directed, weighted
// Graph of network nodes and the links they advertise, plus the plain CostMap
// form in which topology is exchanged with the outside world.
//
// All Graph methods take an internal sync.RWMutex, so a Graph may be built by
// one goroutine while others query it. Shortest-path runs only ever read a
// Graph; callers that keep mutating a topology should hand solvers a Clone.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrLinkNotFound     - requested link does not exist.
//	ErrNegativeCost     - link cost below zero.
//	ErrSelfLoop         - self link with non-zero cost, or any self link when loops are disabled.
//	ErrDanglingNeighbor - a CostMap neighbor that is not itself a key of the map.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core topology operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrNegativeCost indicates a link was given a cost below zero.
	ErrNegativeCost = errors.New("core: negative link cost")

	// ErrSelfLoop indicates a self link that the topology cannot hold:
	// either loops are disabled or the self link carries a non-zero cost.
	ErrSelfLoop = errors.New("core: invalid self link")

	// ErrDanglingNeighbor indicates a CostMap lists a neighbor that has no
	// adjacency entry of its own.
	ErrDanglingNeighbor = errors.New("core: neighbor has no adjacency entry")
)

// Link is one directed adjacency advertised by From: reaching To from From
// costs Cost. The reverse direction is a separate Link and may differ.
type Link struct {
	// From is the advertising node.
	From string

	// To is the neighbor.
	To string

	// Cost is the non-negative link metric.
	Cost int64
}

// CostMap is the plain neighbor-cost form of a topology:
// CostMap[a][b] is the cost of the direct link a→b. The node set is exactly
// the key set; an absent (a, b) pair means there is no direct link.
type CostMap map[string]map[string]int64

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops permits zero-cost self links to be stored. They never change a
// shortest path, but some advertisements carry them.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory link-state database snapshot.
//
// adjacency[from][to] holds the cost of link from→to. Every node has an
// adjacency entry, possibly empty, so the node set is the adjacency key set.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	adjacency map[string]map[string]int64
	linkCount int
}

// NewGraph creates an empty Graph. By default self links are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether zero-cost self links are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
