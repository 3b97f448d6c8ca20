package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkstate/core"
)

// TestReachable_BFSOrder walks a small directed topology.
func TestReachable_BFSOrder(t *testing.T) {
	// A → B → D
	// A → C
	// E → A (E is not reachable from A)
	g := core.NewGraph()
	require.NoError(t, g.AddLink("A", "C", 1))
	require.NoError(t, g.AddLink("A", "B", 1))
	require.NoError(t, g.AddLink("B", "D", 1))
	require.NoError(t, g.AddLink("E", "A", 1))

	order, err := core.Reachable(g, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)

	order, err = core.Reachable(g, "E", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "A", "B", "C", "D"}, order)
}

// TestReachable_Filter treats filtered links as absent.
func TestReachable_Filter(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectional("A", "B", 1))
	require.NoError(t, g.AddBidirectional("B", "C", 99999))

	order, err := core.Reachable(g, "A", func(l core.Link) bool { return l.Cost < 99999 })
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

// TestReachable_Errors covers invalid sources.
func TestReachable_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := core.Reachable(g, "", nil)
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = core.Reachable(g, "A", nil)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestInducedSubgraph keeps only links with both endpoints kept.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectional("A", "B", 1))
	require.NoError(t, g.AddBidirectional("B", "C", 2))
	require.NoError(t, g.AddBidirectional("C", "A", 3))

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true})
	assert.Equal(t, []string{"A", "B"}, sub.Nodes())
	assert.Equal(t, []core.Link{
		{From: "A", To: "B", Cost: 1},
		{From: "B", To: "A", Cost: 1},
	}, sub.Links())
	assert.Equal(t, 2, sub.LinkCount())
	assert.Equal(t, 6, g.LinkCount(), "source graph untouched")
}
