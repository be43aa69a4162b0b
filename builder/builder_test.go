// Package builder_test contains functional tests for the builder constructors:
// topology counts, stable naming, seeded determinism and heuristic labelling.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/builder"
	"github.com/katalvlaran/roadsearch/core"
)

func TestPath_CountsAndOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Cities())
	assert.Equal(t, []core.Road{
		{From: "0", To: "1", Distance: builder.DefaultEdgeWeight},
		{From: "1", To: "2", Distance: builder.DefaultEdgeWeight},
		{From: "2", To: "3", Distance: builder.DefaultEdgeWeight},
	}, g.Roads())
}

func TestPath_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid_CountsAndIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(7)}, builder.Grid(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 12, g.CityCount())
	// rows*(cols-1) + (rows-1)*cols
	assert.Equal(t, 3*3+2*4, g.RoadCount())
	assert.True(t, g.HasCity(builder.GridID(2, 3)))

	w, ok := g.EdgeWeight("1,1", "1,2")
	require.True(t, ok)
	assert.Equal(t, int64(7), w)

	_, ok = g.EdgeWeight("0,0", "1,1")
	assert.False(t, ok)
}

func TestGrid_Invalid(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_DegenerateProbabilities(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.RoadCount())

	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.RoadCount())
	assert.Equal(t, 5, g.CityCount())
}

func TestRandomSparse_SeedIsDeterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 50)},
			builder.Path(20), builder.RandomSparse(20, 0.2))
		require.NoError(t, err)

		return g
	}

	a, b := build(), build()
	assert.Equal(t, a.Roads(), b.Roads())
	for _, r := range a.Roads() {
		assert.GreaterOrEqual(t, r.Distance, int64(1))
		assert.LessOrEqual(t, r.Distance, int64(50))
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_BadWeightFn(t *testing.T) {
	zero := func(_ *rand.Rand) int64 { return 0 }
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightFn(zero)}, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestExactHeuristics_ScaledDistances(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(10)},
		builder.Path(4), builder.ExactHeuristics("3", 1, 2))
	require.NoError(t, err)

	for city, want := range map[string]int64{"0": 15, "1": 10, "2": 5, "3": 0} {
		h, ok := g.Heuristic(city)
		require.True(t, ok, city)
		assert.Equal(t, want, h, city)
	}
}

func TestExactHeuristics_UnreachableLeftUnset(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(3), builder.RandomSparse(5, 0), builder.ExactHeuristics("0", 1, 1))
	require.NoError(t, err)

	_, ok := g.Heuristic("4")
	assert.False(t, ok)
	assert.Equal(t, core.UnknownHeuristic, g.HeuristicOrDefault("4"))
}

func TestExactHeuristics_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.ExactHeuristics("0", 1, 0))
	assert.ErrorIs(t, err, builder.ErrBadScale)

	_, err = builder.BuildGraph(nil, nil, builder.Path(3), builder.ExactHeuristics("nowhere", 1, 1))
	assert.Error(t, err)

	_, err = builder.BuildGraph(nil, nil,
		builder.Path(3), builder.ExactHeuristics("0", 1, 1), builder.ExactHeuristics("0", 1, 1))
	assert.ErrorIs(t, err, core.ErrDuplicateHeuristic)
}

func TestNameSchemes(t *testing.T) {
	assert.Equal(t, "A", builder.LetterNames(0))
	assert.Equal(t, "Z", builder.LetterNames(25))
	assert.Equal(t, "AA", builder.LetterNames(26))
	assert.Equal(t, "BA", builder.LetterNames(52))
	assert.Equal(t, "city7", builder.PrefixNames("city")(7))
	assert.Panics(t, func() { builder.LetterNames(-1) })

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterNames()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Cities())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPrefixNames("town")}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"town0", "town1"}, g.Cities())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithNames(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
}
