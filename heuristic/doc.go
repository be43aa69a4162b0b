// SPDX-License-Identifier: MIT

// Package heuristic audits the per-city estimates stored in a core.Graph.
//
// A* returns an optimal route only when the estimate never exceeds the true
// remaining distance (admissibility). Check measures that directly: it runs
// Dijkstra from the goal and lists every city whose estimate is too large,
// every road across which the estimate drops by more than the road length
// (inconsistency), cities without an estimate and cities that cannot reach
// the goal at all.
//
// The search itself never consults this package; the roadsearch CLI runs it
// behind --check-heuristic.
package heuristic
