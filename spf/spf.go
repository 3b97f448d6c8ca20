package spf

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linkstate/core"
)

// Solve computes the forwarding table of source over the topology g: for
// every node reachable from source, the least total link cost and the
// neighbor of source through which that least-cost path departs.
//
// Returns:
//
//   - *Result: Routes[source] == Route{Cost: 0, NextHop: ""}; every other
//     reachable node maps to its least cost and next hop. Unreachable nodes
//     (and nodes beyond MaxCost) are absent.
//   - err: a sentinel error wrapping ErrInvalidInput or ErrOptionViolation.
//     No partial result is ever returned.
//
// A path whose total cost would exceed math.MaxInt64 is never installed;
// a destination reachable only through such paths is absent like an
// unreachable one.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain source (ErrSourceNotFound).
//
// Link costs need no scan here: core.Graph rejects negative costs and
// non-zero self links at insertion time.
//
// g is only read. Every call owns its tentative set and result, so Solve may
// run concurrently for different sources over the same graph.
//
// Complexity:
//
//   - SelectHeap:   Time O((V + E) log V), Space O(V + E)
//   - SelectLinear: Time O(V² + E),       Space O(V)
func Solve(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate source and graph
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 3) Run
	n := g.NodeCount()
	r := &runner{
		g:         g,
		opts:      cfg,
		source:    source,
		tentative: make(map[string]Route, n),
		frontier:  newFrontier(cfg.Selection, n),
		res: &Result{
			Source: source,
			Routes: make(map[string]Route, n),
			Order:  make([]string, 0, n),
		},
		log: cfg.Logger.WithFields(logrus.Fields{"source": source, "selection": cfg.Selection}),
	}
	if err := r.run(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// SolveCostMap validates cm with core.FromCostMap and runs Solve on it. Any
// validation failure (dangling neighbor, negative cost, non-zero self link,
// empty node ID) is returned wrapping both ErrInvalidInput and the core
// sentinel. cm is not modified.
func SolveCostMap(cm core.CostMap, source string, opts ...Option) (*Result, error) {
	g, err := core.FromCostMap(cm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return Solve(g, source, opts...)
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	g         *core.Graph
	opts      Options
	source    string
	tentative map[string]Route // discovered, not yet settled
	frontier  frontier
	res       *Result // settled; disjoint from tentative
	log       logrus.FieldLogger
}

// run settles nodes cheapest-first until the tentative set is empty.
func (r *runner) run() error {
	r.tentative[r.source] = Route{}
	r.frontier.offer(r.source, 0)

	var (
		cur string
		rt  Route
		ok  bool
	)
	for {
		if cur, ok = r.frontier.next(r.tentative); !ok {
			break
		}

		// Settle cur: its cost and next hop are final from here on.
		rt = r.tentative[cur]
		delete(r.tentative, cur)
		r.res.Routes[cur] = rt
		r.res.Order = append(r.res.Order, cur)
		r.log.WithFields(logrus.Fields{"node": cur, "cost": rt.Cost, "next_hop": rt.NextHop}).Debug("spf: settled")

		if err := r.relax(cur, rt); err != nil {
			return err
		}
	}

	r.log.WithField("routes", len(r.res.Routes)).Debug("spf: done")

	return nil
}

// relax offers every unsettled neighbor of cur a path through cur.
//
// The next hop travels with the path: a direct neighbor of the source is its
// own next hop, and everything reached through cur inherits cur's next hop.
func (r *runner) relax(cur string, rt Route) error {
	links, err := r.g.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("spf: failed to get neighbors of %q: %w", cur, err)
	}

	var (
		cand int64
		hop  string
		old  Route
		ok   bool
	)
	for _, l := range links {
		if _, ok = r.res.Routes[l.To]; ok {
			continue
		}
		if r.opts.InfCost > 0 && l.Cost >= r.opts.InfCost {
			continue
		}
		// An overflowing sum is infinitely far; it can never improve a route.
		if rt.Cost > math.MaxInt64-l.Cost {
			continue
		}
		cand = rt.Cost + l.Cost
		if cand > r.opts.MaxCost {
			continue
		}

		// Strict improvement only: the first path found at a given cost wins.
		if old, ok = r.tentative[l.To]; ok && cand >= old.Cost {
			continue
		}

		hop = rt.NextHop
		if cur == r.source {
			hop = l.To
		}
		r.tentative[l.To] = Route{Cost: cand, NextHop: hop}
		r.frontier.offer(l.To, cand)
		r.log.WithFields(logrus.Fields{"node": l.To, "cost": cand, "next_hop": hop}).Debug("spf: improved")
	}

	return nil
}
