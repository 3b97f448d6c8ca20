// Package core provides the topology snapshot every other package works on.
//
// Overview:
//
//   - A Graph is a link-state database image: a set of nodes, and for each node
//     the directed links it advertises with their costs.
//   - Links are directed. cost(a→b) and cost(b→a) are stored independently, so
//     asymmetric metrics survive intact; AddBidirectional covers the usual
//     symmetric case.
//   - CostMap is the plain map form (node → neighbor → cost) used by loaders,
//     fixtures and the solver's map-based entry point. FromCostMap validates it.
//
// Key features:
//
//   - Deterministic enumeration: Nodes, Links and Neighbors are sorted, so any
//     algorithm iterating them produces identical output run after run.
//   - Snapshots: Clone and CostMap return fully independent copies.
//   - Views: Reachable (BFS over directed links, optional link filter) and
//     InducedSubgraph.
//
// Example:
//
//	   u ──2── v
//	   │ \     │
//	   1  5    3
//	   │    \  │
//	   x ──3── w
//
//	g := core.NewGraph()
//	_ = g.AddBidirectional("u", "v", 2)
//	_ = g.AddBidirectional("u", "x", 1)
//	_ = g.AddBidirectional("u", "w", 5)
//	_ = g.AddBidirectional("v", "w", 3)
//	_ = g.AddBidirectional("x", "w", 3)
//
// Thread safety:
//
//   - Every method takes the graph's RWMutex; concurrent readers never block
//     each other.
//   - Algorithms treat the Graph as read-only for the duration of a call.
package core
