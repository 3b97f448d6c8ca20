// Package spf defines the result types, configuration options and sentinel
// errors of the shortest-path-first computation.
//
// Options:
//
//	– Selection: how the next node to settle is picked (SelectHeap or SelectLinear).
//	– InfCost:   links whose cost is ≥ this value are treated as down (0: off).
//	– MaxCost:   routes costing more than this value are not installed.
//	– Logger:    logrus.FieldLogger receiving per-node debug events.
//
// Errors (sentinel):
//
//	– ErrInvalidInput     umbrella for every input violation below.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrSourceNotFound   if the source node does not exist in the graph.
//	– ErrOptionViolation  if an Option received an invalid argument.
package spf

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linkstate/core"
)

// Sentinel errors returned by Solve and SolveCostMap.
var (
	// ErrInvalidInput is wrapped by every precondition failure, including
	// the core validation errors surfaced by SolveCostMap.
	ErrInvalidInput = errors.New("spf: invalid input")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidInput)

	// ErrEmptySource indicates that the source node ID is empty.
	ErrEmptySource = fmt.Errorf("%w: source node ID is empty", ErrInvalidInput)

	// ErrSourceNotFound indicates that the source node is not part of the graph.
	ErrSourceNotFound = fmt.Errorf("%w: source node not found in graph", ErrInvalidInput)

	// ErrOptionViolation indicates an Option was given an invalid argument.
	ErrOptionViolation = errors.New("spf: invalid option supplied")
)

// Selection picks the strategy used to find the cheapest tentative node.
// Both strategies settle nodes in exactly the same order and therefore
// produce identical results; they differ only in cost.
type Selection int

const (
	// SelectHeap keeps tentative nodes in a binary min-heap with lazy
	// decrease-key. O((V + E) log V).
	SelectHeap Selection = iota

	// SelectLinear scans the whole tentative set on every step. O(V²), but
	// allocation-free and fastest on small topologies.
	SelectLinear
)

// String returns the lower-case strategy name.
func (s Selection) String() string {
	switch s {
	case SelectHeap:
		return "heap"
	case SelectLinear:
		return "linear"
	default:
		return fmt.Sprintf("selection(%d)", int(s))
	}
}

// ParseSelection maps "heap" or "linear" to a Selection.
func ParseSelection(name string) (Selection, error) {
	switch name {
	case "heap", "":
		return SelectHeap, nil
	case "linear":
		return SelectLinear, nil
	default:
		return 0, fmt.Errorf("%w: unknown selection %q", ErrOptionViolation, name)
	}
}

// Options configures a single Solve call.
type Options struct {
	Selection Selection          // tentative-set strategy
	InfCost   int64              // links with cost ≥ InfCost are down; 0 disables
	MaxCost   int64              // routes above MaxCost are not installed
	Logger    logrus.FieldLogger // debug sink; discards by default

	// err records the first invalid option; surfaced by Solve.
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns heap selection, no down-link sentinel, no cost cap,
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Selection: SelectHeap,
		InfCost:   0,
		MaxCost:   math.MaxInt64,
		Logger:    discard,
	}
}

// WithSelection chooses the tentative-set strategy.
func WithSelection(s Selection) Option {
	return func(o *Options) {
		if s != SelectHeap && s != SelectLinear {
			o.err = fmt.Errorf("%w: unknown selection %d", ErrOptionViolation, int(s))
			return
		}
		o.Selection = s
	}
}

// WithInfCost treats every link whose cost is ≥ threshold as down, the way
// link-state protocols advertise a withdrawn adjacency with a maximum metric.
// threshold must be positive.
func WithInfCost(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfCost must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfCost = threshold
	}
}

// WithMaxCost drops every destination whose least cost exceeds max. Such
// destinations are reported exactly like unreachable ones. max must be ≥ 0.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithLogger routes debug events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Route is the settled forwarding decision for one destination.
type Route struct {
	// Cost is the least total link cost from the source.
	Cost int64

	// NextHop is the neighbor of the source through which the least-cost path
	// departs. It is empty only for the source itself.
	NextHop string
}

// Result holds the outcome of one Solve call.
//
//   - Source: the node the table was computed for.
//   - Routes: one settled Route per reachable destination, source included.
//     Unreachable nodes are absent, never present with an infinite cost.
//   - Order:  destinations in the order they were settled; costs along it
//     never decrease.
type Result struct {
	Source string
	Routes map[string]Route
	Order  []string
}

// Lookup returns the route to dest and whether dest is reachable.
func (r *Result) Lookup(dest string) (Route, bool) {
	rt, ok := r.Routes[dest]

	return rt, ok
}

// Destinations returns every reachable node, source included, sorted.
func (r *Result) Destinations() []string {
	out := make([]string, 0, len(r.Routes))
	for id := range r.Routes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Unreachable returns the nodes of g that have no route, sorted.
func (r *Result) Unreachable(g *core.Graph) []string {
	var out []string
	for _, id := range g.Nodes() {
		if _, ok := r.Routes[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
