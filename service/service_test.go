package service

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/linkstate/core"
	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/spf"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// kurose builds the six-router textbook topology; xy is the cost of x–y.
func kurose(t *testing.T, xy int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range []core.Link{
		{From: "u", To: "v", Cost: 2}, {From: "u", To: "x", Cost: 1}, {From: "u", To: "w", Cost: 5},
		{From: "v", To: "x", Cost: 2}, {From: "v", To: "w", Cost: 3}, {From: "x", To: "w", Cost: 3},
		{From: "x", To: "y", Cost: xy}, {From: "w", To: "y", Cost: 1}, {From: "w", To: "z", Cost: 5},
		{From: "y", To: "z", Cost: 2},
	} {
		require.NoError(t, g.AddBidirectional(l.From, l.To, l.Cost))
	}

	return g
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilGraph)

	_, err = New(core.NewGraph(), WithWorkers(-1))
	require.ErrorIs(t, err, ErrOptionViolation)
}

func TestNew_ClonesTopology(t *testing.T) {
	g := kurose(t, 1)
	s, err := New(g)
	require.NoError(t, err)

	require.NoError(t, g.AddLink("u", "q", 1))
	assert.NotContains(t, s.Nodes(), "q")
	assert.Equal(t, float64(6), testutil.ToFloat64(s.metrics.topologyNodes))
}

func TestTable_CachesResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := New(kurose(t, 1), WithRegisterer(reg))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.Table(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, spf.Route{Cost: 4, NextHop: "x"}, first.Routes["z"])

	second, err := s.Table(ctx, "u")
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.spfRuns))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.cacheHits))

	n, err := testutil.GatherAndCount(reg, "linkstate_spf_runs_total", "linkstate_spf_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTable_Errors(t *testing.T) {
	s, err := New(kurose(t, 1))
	require.NoError(t, err)

	_, err = s.Table(context.Background(), "nowhere")
	require.ErrorIs(t, err, spf.ErrSourceNotFound)
	_, err = s.Table(context.Background(), "nowhere")
	require.ErrorIs(t, err, spf.ErrSourceNotFound)
	assert.Equal(t, float64(2), testutil.ToFloat64(s.metrics.spfRuns), "failures are not cached")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Table(ctx, "u")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTable_SolveOptions(t *testing.T) {
	s, err := New(kurose(t, 1), WithSolveOptions(spf.WithSelection(spf.SelectLinear), spf.WithMaxCost(2)))
	require.NoError(t, err)

	res, err := s.Table(context.Background(), "u")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u", "v", "x", "y"}, res.Destinations())
}

func TestTable_ConcurrentCallersShareOneRun(t *testing.T) {
	s, err := New(kurose(t, 1))
	require.NoError(t, err)

	const callers = 64
	results := make([]*spf.Result, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.Table(context.Background(), "w")
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.spfRuns))
	for _, r := range results[1:] {
		assert.Same(t, results[0], r)
	}
}

func TestAll(t *testing.T) {
	s, err := New(kurose(t, 1), WithWorkers(2))
	require.NoError(t, err)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 6)
	for src, res := range all {
		assert.Equal(t, src, res.Source)
		assert.Len(t, res.Routes, 6)
	}
	assert.Equal(t, spf.Route{Cost: 3, NextHop: "y"}, all["x"].Routes["z"])
	assert.Equal(t, float64(6), testutil.ToFloat64(s.metrics.spfRuns))
}

func TestAll_Cancelled(t *testing.T) {
	s, err := New(kurose(t, 1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.All(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReplace_ReportsMovedRoutes(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := New(kurose(t, 1), WithLogger(logger))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Table(ctx, "u")
	require.NoError(t, err)

	changes, err := s.Replace(ctx, kurose(t, 10))
	require.NoError(t, err)

	want := []fib.Change{
		{Kind: fib.Changed, Old: fib.Entry{Destination: "w", NextHop: "x", Cost: 3}, New: fib.Entry{Destination: "w", NextHop: "x", Cost: 4}},
		{Kind: fib.Changed, Old: fib.Entry{Destination: "y", NextHop: "x", Cost: 2}, New: fib.Entry{Destination: "y", NextHop: "x", Cost: 5}},
		{Kind: fib.Changed, Old: fib.Entry{Destination: "z", NextHop: "x", Cost: 4}, New: fib.Entry{Destination: "z", NextHop: "x", Cost: 7}},
	}
	assert.Equal(t, map[string][]fib.Change{"u": want}, changes)

	res, err := s.Table(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, spf.Route{Cost: 7, NextHop: "x"}, res.Routes["z"])
	assert.Equal(t, float64(2), testutil.ToFloat64(s.metrics.spfRuns), "Replace warmed the cache")

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "service: topology replaced")
	assert.Contains(t, msgs, "service: table reconverged")
}

func TestReplace_WithdrawnSource(t *testing.T) {
	s, err := New(kurose(t, 1))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Table(ctx, "z")
	require.NoError(t, err)

	g := kurose(t, 1)
	require.NoError(t, g.RemoveNode("z"))
	changes, err := s.Replace(ctx, g)
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Equal(t, float64(5), testutil.ToFloat64(s.metrics.topologyNodes))

	_, err = s.Table(ctx, "z")
	require.ErrorIs(t, err, spf.ErrSourceNotFound)

	_, err = s.Replace(ctx, nil)
	require.ErrorIs(t, err, ErrNilGraph)
}

func TestReplace_CancelledKeepsSnapshot(t *testing.T) {
	s, err := New(kurose(t, 1))
	require.NoError(t, err)

	before, err := s.Table(context.Background(), "u")
	require.NoError(t, err)

	g := kurose(t, 10)
	require.NoError(t, g.AddNode("extra"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	changes, err := s.Replace(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, changes)

	assert.NotContains(t, s.Nodes(), "extra")
	assert.Equal(t, float64(6), testutil.ToFloat64(s.metrics.topologyNodes))
	after, err := s.Table(context.Background(), "u")
	require.NoError(t, err)
	assert.Same(t, before, after, "cached table survives")

	changes, err = s.Replace(context.Background(), g)
	require.NoError(t, err)
	assert.Len(t, changes["u"], 3, "extra is unreachable and gets no row")
}

func TestReplace_ConcurrentWithReaders(t *testing.T) {
	s, err := New(kurose(t, 1), WithWorkers(4))
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				res, err := s.Table(ctx, "u")
				if assert.NoError(t, err) {
					z := res.Routes["z"].Cost
					assert.True(t, z == 4 || z == 7, "z cost %d belongs to neither snapshot", z)
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		xy := int64(1)
		if i%2 == 0 {
			xy = 10
		}
		_, err := s.Replace(ctx, kurose(t, xy))
		require.NoError(t, err)
	}
	wg.Wait()
}
