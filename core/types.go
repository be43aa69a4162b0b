// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: City, Road, Neighbor and Graph declarations, sentinel errors, GraphOption
//       and the NewGraph constructor.
// Policy:
//   - Cities are keyed by name; insertion order is remembered for deterministic output.
//   - Roads are undirected and kept in insertion order; lookups scan that order,
//     so the first road between a pair wins.
//   - A missing heuristic is never an error; callers either get ok == false
//     (Heuristic) or the graph's unknown-heuristic sentinel (HeuristicOrDefault).

package core

import (
	"errors"
	"sync"
)

// UnknownHeuristic is the default estimate used for cities that have no
// heuristic entry. It is large enough to push such cities to the back of any
// frontier ordered by h or g+h on country-sized road maps.
const UnknownHeuristic int64 = 9999

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityName indicates that a city name is the empty string.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrCityNotFound indicates an operation referenced a city that was never added.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrBadWeight indicates a road distance that is not strictly positive.
	ErrBadWeight = errors.New("core: road distance must be positive")

	// ErrLoopNotAllowed indicates a road from a city to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeHeuristic indicates a negative heuristic estimate.
	ErrNegativeHeuristic = errors.New("core: heuristic must be non-negative")

	// ErrDuplicateHeuristic indicates a second heuristic for a city that already has one.
	// The first value is kept.
	ErrDuplicateHeuristic = errors.New("core: heuristic already set")
)

// City is a named node of the road graph.
type City struct {
	// Name uniquely identifies the city.
	Name string

	// Heuristic is the estimated remaining distance to the goal.
	// Meaningful only when HasHeuristic is true.
	Heuristic int64

	// HasHeuristic reports whether a heuristic entry was loaded for this city.
	HasHeuristic bool
}

// Road is an undirected connection between two cities.
type Road struct {
	// From and To are the endpoints as they were inserted; orientation carries no meaning.
	From string
	To   string

	// Distance is the positive road length.
	Distance int64
}

// Neighbor is one city reachable from another over a single road.
type Neighbor struct {
	// City is the name of the reachable city.
	City string

	// Distance is the length of the road used to reach City.
	Distance int64

	// Road is the index of that road in Roads() order.
	Road int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithUnknownHeuristic overrides the sentinel returned by HeuristicOrDefault
// for cities without a heuristic entry. Panics on a negative value.
func WithUnknownHeuristic(v int64) GraphOption {
	if v < 0 {
		panic("core: WithUnknownHeuristic(negative)")
	}
	return func(g *Graph) { g.unknownHeuristic = v }
}

// Graph is a static road map: cities with heuristic estimates and undirected
// weighted roads between them.
//
// A single sync.RWMutex guards all state, so one Graph can be shared by any
// number of concurrent readers (search runs) once loading is done.
type Graph struct {
	mu sync.RWMutex

	unknownHeuristic int64

	order  []string         // city names in insertion order
	cities map[string]*City // name → City
	roads  []Road           // roads in insertion order

	// adjacency[name] lists indices into roads touching name, in insertion order.
	adjacency map[string][]int
}

// NewGraph creates an empty Graph. Options are applied left to right.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		unknownHeuristic: UnknownHeuristic,
		cities:           make(map[string]*City),
		adjacency:        make(map[string][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
