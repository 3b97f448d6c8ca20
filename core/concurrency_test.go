// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkstate/core"
)

// TestConcurrentAddLink ensures concurrent AddLink calls from one router are
// all recorded.
func TestConcurrentAddLink(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddLink("X", fmt.Sprintf("R%d", id), int64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.LinkCount())
}

// TestConcurrentReadersAndClone mixes readers, clones and writers; the race
// detector is the real assertion here.
func TestConcurrentReadersAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddBidirectional("hub", fmt.Sprintf("R%d", i), int64(i)))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers * 3)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("hub")
		}()
		go func() {
			defer wg.Done()
			c := g.Clone()
			_ = c.CostMap()
		}()
		go func(id int) {
			defer wg.Done()
			_ = g.AddLink(fmt.Sprintf("R%d", id), "hub", int64(id+1))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 51, g.NodeCount())
}
