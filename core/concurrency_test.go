package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/core"
)

// TestConcurrentReaders shares one loaded graph between many goroutines, the
// way independent search runs use it. Run with -race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	const n = 50
	for i := 0; i < n-1; i++ {
		u, v := fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", i+1)
		require.NoError(t, g.AddRoad(u, v, int64(i+1)))
		require.NoError(t, g.SetHeuristic(u, int64(n-i)))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i < n-1; i++ {
				name := fmt.Sprintf("C%d", i)
				nb, err := g.Neighbors(name)
				assert.NoError(t, err)
				assert.Len(t, nb, 2)
				_, ok := g.EdgeWeight(name, fmt.Sprintf("C%d", i+1))
				assert.True(t, ok)
				assert.Equal(t, int64(n-i), g.HeuristicOrDefault(name))
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentWriters checks that interleaved AddRoad calls never lose a road.
func TestConcurrentWriters(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				assert.NoError(t, g.AddRoad(fmt.Sprintf("W%d", w), fmt.Sprintf("X%d", i), 1))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 100, g.RoadCount())
	assert.Equal(t, 29, g.CityCount())
}
