// Package spf computes link-state forwarding tables: the shortest-path-first
// run every router performs over its copy of the topology.
//
// Overview:
//
//   - Solve settles nodes cheapest-first from a source, exactly like Dijkstra,
//     but instead of recording each node's predecessor it records the
//     neighbor of the source the path leaves through. The table answers
//     "where do I send a packet for X" in one lookup, with no path walk.
//   - A direct neighbor of the source is its own next hop. Any node first
//     reached (or improved) through node c inherits c's next hop.
//   - Settled nodes are never revisited. With non-negative costs a settled
//     node can never improve, so this is safe.
//   - The run ends when the tentative set is empty. Nodes not connected to the
//     source are simply absent from the result.
//
// Determinism:
//
//   - Among tentative nodes of equal cost, the smallest node ID is settled
//     first; neighbors are visited in ID order; a tentative route is replaced
//     only by a strictly cheaper one. Repeated runs give identical results,
//     and SelectHeap and SelectLinear give identical results to each other.
//
// Example (the six-router topology from Kurose & Ross):
//
//	links: u–v 2, u–x 1, u–w 5, v–x 2, v–w 3,
//	       x–w 3, x–y 1, w–y 1, w–z 5, y–z 2
//
//	res, err := spf.SolveCostMap(costs, "u")
//	// res.Routes["w"] == Route{Cost: 3, NextHop: "x"}  (u→x→y→w)
//	// res.Routes["z"] == Route{Cost: 4, NextHop: "x"}
//
// Complexity:
//
//   - SelectHeap:   O((V + E) log V) time, lazy decrease-key.
//   - SelectLinear: O(V²) time, O(V) extra space.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidInput wraps ErrNilGraph, ErrEmptySource, ErrSourceNotFound and,
//     from SolveCostMap, core.ErrDanglingNeighbor, core.ErrNegativeCost,
//     core.ErrSelfLoop and core.ErrEmptyNodeID.
//   - ErrOptionViolation for invalid options. Paths whose cost does not fit
//     in int64 are treated as unusable rather than reported.
//
// Thread safety:
//
//   - Solve only reads the graph. Concurrent calls over one graph are safe as
//     long as nobody mutates it meanwhile; hand each caller a core.Graph.Clone
//     otherwise.
package spf
