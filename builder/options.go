package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// builderConfig aggregates every knob used by constructors. It is passed by
// value, so constructors cannot leak changes into each other.
type builderConfig struct {
	idFn       func(int) string
	rng        *rand.Rand
	costFn     func(*rand.Rand) int64
	asymmetric bool

	// err records the first invalid option; surfaced by BuildGraph.
	err error
}

const defaultCost = int64(1)

// BuilderOption customizes the configuration shared by all constructors of
// one BuildGraph call.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   strconv.Itoa,
		costFn: func(*rand.Rand) int64 { return defaultCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c *builderConfig) fail(format string, args ...interface{}) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithIDScheme sets the index → node ID function.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail("WithIDScheme(nil)")
			return
		}
		c.idFn = fn
	}
}

// WithIDPrefix names nodes prefix+index, e.g. "r0", "r1".
func WithIDPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) string { return prefix + strconv.Itoa(i) }
	}
}

// WithSeed attaches a rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches r as the randomness source.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.fail("WithRand(nil)")
			return
		}
		c.rng = r
	}
}

// WithConstantCost gives every link the same cost.
func WithConstantCost(cost int64) BuilderOption {
	return func(c *builderConfig) {
		if cost < 0 {
			c.fail("cost must be ≥ 0, got %d", cost)
			return
		}
		c.costFn = func(*rand.Rand) int64 { return cost }
	}
}

// WithUniformCost draws each cost uniformly from [min, max]. Without a
// randomness source it yields min.
func WithUniformCost(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		if min < 0 || max < min {
			c.fail("require 0 ≤ min ≤ max, got min=%d, max=%d", min, max)
			return
		}
		c.costFn = func(rng *rand.Rand) int64 {
			if rng == nil || min == max {
				return min
			}
			return min + rng.Int63n(max-min+1)
		}
	}
}

// WithCostFn installs a custom cost generator. fn receives the possibly nil
// randomness source and must return a non-negative cost.
func WithCostFn(fn func(*rand.Rand) int64) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail("WithCostFn(nil)")
			return
		}
		c.costFn = fn
	}
}

// WithAsymmetricCost draws the two directions of every adjacency
// independently.
func WithAsymmetricCost() BuilderOption {
	return func(c *builderConfig) { c.asymmetric = true }
}
