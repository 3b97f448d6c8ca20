package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linkstate/core"
)

// Sentinel errors.
var (
	ErrTooFewNodes        = errors.New("builder: parameter too small")
	ErrInvalidProbability = errors.New("builder: probability out of range")
	ErrNeedRandSource     = errors.New("builder: rng is required")
	ErrOptionViolation    = errors.New("builder: invalid option value")
	ErrConstructFailed    = errors.New("builder: construction failed")
)

// Constructor applies a deterministic topology to g using the resolved
// builderConfig. Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves bopts and applies cons in
// order. The first failure is returned wrapped as "BuildGraph: %w"; the
// partially built graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// 1) Resolve options
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	// 2) Apply constructors in order
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w: %w", method, ids[i], ErrConstructFailed, err)
		}
	}

	return ids, nil
}

// connect emits the adjacency a–b as two directed links.
func connect(g *core.Graph, cfg builderConfig, method, a, b string) error {
	ab := cfg.costFn(cfg.rng)
	ba := ab
	if cfg.asymmetric {
		ba = cfg.costFn(cfg.rng)
	}
	if err := g.AddLink(a, b, ab); err != nil {
		return fmt.Errorf("%s: AddLink(%s→%s, %d): %w: %w", method, a, b, ab, ErrConstructFailed, err)
	}
	if err := g.AddLink(b, a, ba); err != nil {
		return fmt.Errorf("%s: AddLink(%s→%s, %d): %w: %w", method, b, a, ba, ErrConstructFailed, err)
	}

	return nil
}
