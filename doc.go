// Package linkstate computes link-state forwarding tables: for one router of
// a weighted topology, the least-cost path to every other router and the
// neighbor through which that path leaves.
//
// What is inside?
//
//	A thread-safe topology snapshot and a deterministic shortest-path-first
//	solver, plus the plumbing around them:
//		• core/      directed weighted Graph, cost-map import/export, reachability
//		• spf/       next-hop-from-origin Dijkstra (heap or linear selection)
//		• fib/       forwarding tables: build, diff, verify, trace, render
//		• topofile/  topology loaders for YAML cost maps and the Inet format
//		• builder/   ring, grid, star, random and other synthetic topologies
//		• service/   cached, coalesced, parallel table computation with metrics
//		• cmd/lsroute  CLI: table, all, check, trace, gen
//
// Quick example:
//
//	    A──5──B
//	    │     │╲
//	   10     3 11
//	    │     │  ╲
//	    C─────┘   D
//	     ╲___2___╱
//
//	lsroute table -t square.yaml -s A
//
//	prints B via B (5), C via B (8), D via B (10).
//
// Every result is deterministic: among equally cheap candidates the
// lexicographically smallest router is settled first, so repeated runs and
// both selection strategies agree row for row.
package linkstate
