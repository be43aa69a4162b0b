package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/arena"
	"github.com/katalvlaran/roadsearch/config"
	"github.com/katalvlaran/roadsearch/loader"
	"github.com/katalvlaran/roadsearch/report"
	"github.com/katalvlaran/roadsearch/search"
)

const spainData = "../../data/spain.txt"

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(context.Background(), "test", &out, &errOut)
	cmd.SetArgs(append([]string{"--env-file", "", "--color", "never"}, args...))
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_BothStrategies(t *testing.T) {
	out, _, err := run(t, spainData, "--quiet")
	require.NoError(t, err)

	assert.Contains(t, out, "ROUTE SEARCH: Malaga to Valladolid\n")
	assert.Contains(t, out, "Loaded 39 roads, 24 cities\n")
	assert.Contains(t, out, "=== GREEDY BEST-FIRST ===")
	assert.Contains(t, out, "Path: Malaga -> Cordoba -> Madrid -> Valladolid\nTotal distance: 758 km\n")
	assert.Contains(t, out, "=== A* SEARCH ===")
	assert.Contains(t, out, "Path: Malaga -> Granada -> Jaen -> Madrid -> Valladolid\nTotal distance: 756 km\n")
	assert.NotContains(t, out, "Expanding:")
}

func TestRoot_TraceByDefault(t *testing.T) {
	out, _, err := run(t, spainData, "--strategy", "astar")
	require.NoError(t, err)

	assert.Contains(t, out, "Expanding: Malaga (g=0, h=")
	assert.NotContains(t, out, "GREEDY")
}

func TestRoot_ConfigFileAndFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadsearch.yaml")
	yml := "data: " + spainData + "\nstart: Gerona\ngoal: Malaga\nstrategies: [astar]\nquiet: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	out, _, err := run(t, "--config", path, "--goal", "Cadiz")
	require.NoError(t, err)

	assert.Contains(t, out, "ROUTE SEARCH: Gerona to Cadiz")
	assert.Contains(t, out, "Total distance: 1337 km")
	assert.NotContains(t, out, "GREEDY")
}

func TestRoot_UnknownStartFails(t *testing.T) {
	out, _, err := run(t, spainData, "--start", "Atlantis")

	assert.ErrorIs(t, err, search.ErrStartNotFound)
	assert.Contains(t, out, "GREEDY BEST-FIRST: search: start city not found")
	assert.Contains(t, out, "A* SEARCH: search: start city not found")
}

func TestRoot_CapacityExceeded(t *testing.T) {
	out, stderr, err := run(t, spainData, "--quiet", "--capacity", "3")

	assert.ErrorIs(t, err, arena.ErrCapacityExceeded)
	assert.Contains(t, out, "✗ Search failed!")
	assert.Contains(t, stderr, "search failed")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := run(t, spainData, "--frontier", "fibonacci")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "no/such/file.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunStrategies_RejectsUnvalidatedStrategies(t *testing.T) {
	g, _, err := loader.LoadFile(spainData)
	require.NoError(t, err)
	log, hook := logtest.NewNullLogger()

	cfg := config.Default()
	cfg.Strategies = []string{"astar", "dijkstra"}
	var out bytes.Buffer
	err = runStrategies(context.Background(), cfg, g, report.New(&out), log)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Empty(t, out.String())

	cfg.Strategies = nil
	err = runStrategies(context.Background(), cfg, g, report.New(&out), log)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Empty(t, out.String())
	assert.Empty(t, hook.AllEntries())
}

func TestRunStrategies_StopsOnCancel(t *testing.T) {
	g, _, err := loader.LoadFile(spainData)
	require.NoError(t, err)
	log, _ := logtest.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err = runStrategies(ctx, config.Default(), g, report.New(&out), log)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "GREEDY")
}

func TestRoot_LinearFrontierAndSkipStale(t *testing.T) {
	out, _, err := run(t, spainData, "--frontier", "linear", "--skip-stale", "-S", "astar")
	require.NoError(t, err)

	assert.Contains(t, out, "Stale: Jaen")
	assert.Contains(t, out, "Total distance: 756 km")
}

func TestRoot_CheckHeuristic(t *testing.T) {
	out, _, err := run(t, spainData, "--quiet", "--check-heuristic")
	require.NoError(t, err)

	assert.Contains(t, out, "=== HEURISTIC CHECK (goal Valladolid) ===")
}

func TestRoot_Verbose(t *testing.T) {
	_, stderr, err := run(t, spainData, "--quiet", "--verbose", "-S", "greedy")
	require.NoError(t, err)

	assert.Contains(t, stderr, "graph loaded")
	assert.Contains(t, stderr, "search initialised")
}

func TestExport_RoundTrip(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "spain.yaml")
	_, _, err := run(t, "export", spainData, "-o", dst)
	require.NoError(t, err)

	g, st, err := loader.LoadFile(dst, loader.WithStrict())
	require.NoError(t, err)
	assert.Equal(t, loader.YAML, st.Format)
	assert.Equal(t, 39, g.RoadCount())
	assert.Equal(t, 24, g.CityCount())
}
