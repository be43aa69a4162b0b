package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/core"
)

// triangle builds A-B(2), B-C(3), A-C(10) with heuristics A=5, B=3, C=0.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.SetHeuristic("A", 5))
	require.NoError(t, g.SetHeuristic("B", 3))
	require.NoError(t, g.SetHeuristic("C", 0))
	require.NoError(t, g.AddRoad("A", "B", 2))
	require.NoError(t, g.AddRoad("B", "C", 3))
	require.NoError(t, g.AddRoad("A", "C", 10))

	return g
}

func TestAddCity_EmptyName(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddCity(""), core.ErrEmptyCityName)
	assert.ErrorIs(t, g.SetHeuristic("", 1), core.ErrEmptyCityName)
	assert.ErrorIs(t, g.AddRoad("", "B", 1), core.ErrEmptyCityName)
}

func TestAddCity_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity("A"))
	require.NoError(t, g.AddCity("A"))
	assert.Equal(t, 1, g.CityCount())
	assert.True(t, g.HasCity("A"))
	assert.False(t, g.HasCity("B"))
}

func TestCities_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("Malaga", "Granada", 129))
	require.NoError(t, g.SetHeuristic("Valladolid", 0))
	require.NoError(t, g.AddCity("Cadiz"))
	assert.Equal(t, []string{"Malaga", "Granada", "Valladolid", "Cadiz"}, g.Cities())
}

func TestHeuristic_MissingUsesSentinel(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity("X"))

	_, ok := g.Heuristic("X")
	assert.False(t, ok)
	_, ok = g.Heuristic("nowhere")
	assert.False(t, ok)
	assert.Equal(t, core.UnknownHeuristic, g.HeuristicOrDefault("X"))
	assert.Equal(t, core.UnknownHeuristic, g.HeuristicOrDefault("nowhere"))
}

func TestHeuristic_CustomSentinel(t *testing.T) {
	g := core.NewGraph(core.WithUnknownHeuristic(42))
	assert.Equal(t, int64(42), g.HeuristicOrDefault("X"))
	assert.Panics(t, func() { core.WithUnknownHeuristic(-1) })
}

func TestSetHeuristic_FirstWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.SetHeuristic("A", 7))
	assert.ErrorIs(t, g.SetHeuristic("A", 1), core.ErrDuplicateHeuristic)

	h, ok := g.Heuristic("A")
	assert.True(t, ok)
	assert.Equal(t, int64(7), h)
}

func TestSetHeuristic_Negative(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.SetHeuristic("A", -1), core.ErrNegativeHeuristic)
	assert.False(t, g.HasCity("A"))
}

func TestAddRoad_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddRoad("A", "A", 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddRoad("A", "B", 0), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddRoad("A", "B", -4), core.ErrBadWeight)
	assert.Equal(t, 0, g.RoadCount())
}

func TestNeighbors_BothOrientationsInRoadOrder(t *testing.T) {
	g := triangle(t)

	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{City: "A", Distance: 2, Road: 0},
		{City: "C", Distance: 3, Road: 1},
	}, nb)

	nb, err = g.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, []string{nb[0].City, nb[1].City})
}

func TestNeighbors_UnknownCity(t *testing.T) {
	g := triangle(t)
	nb, err := g.Neighbors("Z")
	assert.Nil(t, nb)
	assert.ErrorIs(t, err, core.ErrCityNotFound)
}

func TestNeighbors_IsolatedCity(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.SetHeuristic("Lonely", 3))
	nb, err := g.Neighbors("Lonely")
	require.NoError(t, err)
	assert.Empty(t, nb)
}

func TestEdgeWeight_Symmetric(t *testing.T) {
	g := triangle(t)

	d, ok := g.EdgeWeight("A", "C")
	assert.True(t, ok)
	assert.Equal(t, int64(10), d)

	d, ok = g.EdgeWeight("C", "A")
	assert.True(t, ok)
	assert.Equal(t, int64(10), d)
}

func TestEdgeWeight_NoEdge(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddCity("D"))

	_, ok := g.EdgeWeight("A", "D")
	assert.False(t, ok)
	_, ok = g.EdgeWeight("nowhere", "A")
	assert.False(t, ok)
}

func TestEdgeWeight_ParallelRoadsFirstWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("A", "B", 8))
	require.NoError(t, g.AddRoad("B", "A", 3))

	d, ok := g.EdgeWeight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(8), d)

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nb, 2)
	assert.Equal(t, int64(3), nb[1].Distance)
}

func TestRoads_CopyIsDetached(t *testing.T) {
	g := triangle(t)
	roads := g.Roads()
	require.Len(t, roads, 3)
	roads[0].Distance = 1000

	d, _ := g.EdgeWeight("A", "B")
	assert.Equal(t, int64(2), d)
}

func TestCity_Record(t *testing.T) {
	g := triangle(t)
	c, err := g.City("B")
	require.NoError(t, err)
	assert.Equal(t, core.City{Name: "B", Heuristic: 3, HasHeuristic: true}, c)

	_, err = g.City("Z")
	assert.ErrorIs(t, err, core.ErrCityNotFound)
}
