// Package service serves forwarding tables for every node of one topology
// snapshot to concurrent callers.
//
// A Service owns a private clone of the topology. Tables are computed on
// demand with spf.Solve, cached per source, and shared: concurrent requests
// for the same uncached source wait on a single computation. All fans the
// computation out over a bounded worker pool. Replace recomputes the served
// tables against a new snapshot, swaps it in and reports how they moved.
//
// Returned *spf.Result values are shared between callers and must be treated
// as read-only.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/linkstate/core"
	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/spf"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned by New and Replace for a nil topology.
	ErrNilGraph = errors.New("service: topology is nil")

	// ErrOptionViolation indicates an Option was given an invalid argument.
	ErrOptionViolation = errors.New("service: invalid option supplied")
)

// Option configures a Service.
type Option func(*Service)

// WithWorkers bounds the number of tables All computes at once.
// n == 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n < 0 {
			s.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		s.workers = n
	}
}

// WithRegisterer registers the service metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) { s.reg = reg }
}

// WithLogger routes service events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSolveOptions passes opts to every spf.Solve call.
func WithSolveOptions(opts ...spf.Option) Option {
	return func(s *Service) { s.solveOpts = append(s.solveOpts, opts...) }
}

// Service computes and caches forwarding tables for one topology snapshot.
type Service struct {
	mu    sync.RWMutex
	graph *core.Graph
	gen   uint64
	cache map[string]*spf.Result

	flight singleflight.Group

	// replaceMu serializes Replace calls.
	replaceMu sync.Mutex

	workers   int
	solveOpts []spf.Option
	reg       prometheus.Registerer
	log       logrus.FieldLogger
	metrics   *metrics

	err error
}

// New clones g and returns a Service over the clone. Later changes to g are
// not observed; use Replace.
func New(g *core.Graph, opts ...Option) (*Service, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	s := &Service{
		graph: g.Clone(),
		cache: make(map[string]*spf.Result),
		log:   discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.workers == 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}

	s.metrics = newMetrics(s.reg)
	s.metrics.topologyNodes.Set(float64(s.graph.NodeCount()))

	return s, nil
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Nodes returns the node IDs of the current snapshot, sorted.
func (s *Service) Nodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.Nodes()
}

// Table returns the forwarding table of source, computing it at most once
// per snapshot. Errors from spf.Solve (for example an unknown source) are
// returned unchanged and not cached.
func (s *Service) Table(ctx context.Context, source string) (*spf.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	g, gen := s.graph, s.gen
	res, ok := s.cache[source]
	s.mu.RUnlock()
	if ok {
		s.metrics.cacheHits.Inc()
		return res, nil
	}

	key := fmt.Sprintf("%d/%s", gen, source)
	ch := s.flight.DoChan(key, func() (interface{}, error) {
		return s.compute(g, gen, source)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*spf.Result), nil
	}
}

// compute solves source over g and stores the result if g is still the
// current snapshot.
func (s *Service) compute(g *core.Graph, gen uint64, source string) (*spf.Result, error) {
	s.mu.RLock()
	res, ok := s.cache[source]
	current := s.gen == gen
	s.mu.RUnlock()
	if ok && current {
		s.metrics.cacheHits.Inc()
		return res, nil
	}

	res, err := s.solve(g, source)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache[source] = res
	}
	s.mu.Unlock()

	return res, nil
}

// solve runs spf.Solve and records its metrics.
func (s *Service) solve(g *core.Graph, source string) (*spf.Result, error) {
	timer := prometheus.NewTimer(s.metrics.spfDuration)
	res, err := spf.Solve(g, source, s.solveOpts...)
	timer.ObserveDuration()
	s.metrics.spfRuns.Inc()
	if err != nil {
		s.log.WithFields(logrus.Fields{"source": source, "error": err}).Debug("service: solve failed")
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"source": source, "routes": len(res.Routes)}).Debug("service: table computed")

	return res, nil
}

// All returns the forwarding table of every node, keyed by source. Tables
// are computed on at most WithWorkers goroutines; the first error or a
// cancelled ctx stops the remaining work.
func (s *Service) All(ctx context.Context) (map[string]*spf.Result, error) {
	nodes := s.Nodes()

	var mu sync.Mutex
	out := make(map[string]*spf.Result, len(nodes))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for _, id := range nodes {
		eg.Go(func() error {
			res, err := s.Table(egCtx, id)
			if err != nil {
				return fmt.Errorf("service: table of %s: %w", id, err)
			}
			mu.Lock()
			out[id] = res
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Replace installs a clone of g as the current snapshot. Every source that
// had a cached table and still exists in g is recomputed against the clone
// first; the recomputed tables become the new cache and the returned map
// lists, per such source, how its forwarding table changed. Sources without
// changes are omitted.
//
// If ctx is cancelled or a recomputation fails, Replace returns the error and
// the previous snapshot and cache stay in place.
func (s *Service) Replace(ctx context.Context, g *core.Graph) (map[string][]fib.Change, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	next := g.Clone()

	s.replaceMu.Lock()
	defer s.replaceMu.Unlock()

	s.mu.RLock()
	old := make(map[string]*spf.Result, len(s.cache))
	for source, res := range s.cache {
		old[source] = res
	}
	s.mu.RUnlock()

	fresh := make(map[string]*spf.Result, len(old))
	for source := range old {
		if !next.HasNode(source) {
			s.log.WithField("source", source).Info("service: source withdrawn")
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := s.solve(next, source)
		if err != nil {
			return nil, fmt.Errorf("service: table of %s: %w", source, err)
		}
		fresh[source] = res
	}

	s.mu.Lock()
	s.graph = next
	s.gen++
	s.cache = fresh
	s.mu.Unlock()

	s.metrics.topologyNodes.Set(float64(next.NodeCount()))
	s.log.WithFields(logrus.Fields{"nodes": next.NodeCount(), "links": next.LinkCount()}).Info("service: topology replaced")

	changes := make(map[string][]fib.Change)
	for source, res := range fresh {
		diff := fib.Diff(fib.Build(old[source]), fib.Build(res))
		if len(diff) == 0 {
			continue
		}
		changes[source] = diff
		for _, c := range diff {
			s.log.WithFields(logrus.Fields{"source": source, "destination": c.Destination(), "change": c.Kind}).Debug("service: route changed")
		}
		s.log.WithFields(logrus.Fields{"source": source, "changes": len(diff)}).Info("service: table reconverged")
	}

	return changes, nil
}
