package fib

import (
	"errors"
	"fmt"
	"sort"
)

// Forwarding-walk errors returned by Trace.
var (
	ErrForwardingLoop = errors.New("fib: forwarding loop")
	ErrBlackhole      = errors.New("fib: no route at hop")
)

// Loop is a cycle in the next-hop graph toward Destination. Hops is closed
// (first == last) and starts at its lexicographically smallest router.
type Loop struct {
	Destination string
	Hops        []string
}

// Blackhole is a router that receives traffic for Destination from From but
// has no route for it.
type Blackhole struct {
	Destination string
	Router      string
	From        string
}

// Report is the outcome of Verify.
type Report struct {
	Loops      []Loop
	Blackholes []Blackhole
}

// OK reports whether no loop and no blackhole was found.
func (r Report) OK() bool { return len(r.Loops) == 0 && len(r.Blackholes) == 0 }

const (
	white = iota
	gray
	black
)

// Verify walks, for every destination, the next-hop graph formed by tables
// (keyed by source router) and reports forwarding loops and blackholes.
// Each router has at most one next hop per destination, so every walk is a
// simple chain that either reaches the destination, falls into a blackhole,
// or closes a loop; three-colour marking visits each router once per
// destination.
//
// Complexity: O(D · R · log E) for D destinations, R routers, E rows each.
func Verify(tables map[string]Table) Report {
	routers := make([]string, 0, len(tables))
	dests := map[string]bool{}
	for id, t := range tables {
		routers = append(routers, id)
		for _, e := range t.Entries {
			dests[e.Destination] = true
		}
	}
	sort.Strings(routers)
	destList := make([]string, 0, len(dests))
	for d := range dests {
		destList = append(destList, d)
	}
	sort.Strings(destList)

	var rep Report
	for _, d := range destList {
		state := make(map[string]int, len(routers))
		for _, r := range routers {
			if state[r] != white {
				continue
			}
			if _, ok := tables[r].Lookup(d); !ok && r != d {
				continue
			}
			walk(tables, d, r, state, &rep)
		}
	}

	return rep
}

func walk(tables map[string]Table, dest, start string, state map[string]int, rep *Report) {
	var path []string
	cur, prev := start, ""
	for {
		if state[cur] == gray {
			// Back on a router of this very walk: the tail from it is a loop.
			i := indexOf(path, cur)
			rep.Loops = append(rep.Loops, Loop{Destination: dest, Hops: canonicalLoop(path[i:])})
			break
		}
		if state[cur] == black {
			break
		}
		state[cur] = gray
		path = append(path, cur)
		if cur == dest {
			break
		}
		e, ok := tables[cur].Lookup(dest)
		if !ok || e.NextHop == "" {
			rep.Blackholes = append(rep.Blackholes, Blackhole{Destination: dest, Router: cur, From: prev})
			break
		}
		prev, cur = cur, e.NextHop
	}

	for _, id := range path {
		state[id] = black
	}
}

// canonicalLoop rotates cycle so its smallest router comes first and closes it.
func canonicalLoop(cycle []string) []string {
	min := 0
	for i, id := range cycle {
		if id < cycle[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cycle)+1)
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)

	return append(out, out[0])
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// Trace follows next hops from router from toward dest and returns the
// routers visited, from first and dest last.
func Trace(tables map[string]Table, from, dest string) ([]string, error) {
	path := []string{from}
	seen := map[string]bool{from: true}
	for cur := from; cur != dest; {
		e, ok := tables[cur].Lookup(dest)
		if !ok || e.NextHop == "" {
			return path, fmt.Errorf("%w: %s has no route to %s", ErrBlackhole, cur, dest)
		}
		cur = e.NextHop
		path = append(path, cur)
		if seen[cur] {
			return path, fmt.Errorf("%w: %s revisited toward %s", ErrForwardingLoop, cur, dest)
		}
		seen[cur] = true
	}

	return path, nil
}
