// SPDX-License-Identifier: MIT
// Package: roadsearch/heuristic
//
// check.go - Check(g, goal): compare every stored estimate with the exact
// distance computed by a single Dijkstra run from the goal.
//
// Complexity:
//   - Time:  O((V + E) log V) for Dijkstra plus O(V + E) for the scans.
//   - Space: O(V).

package heuristic

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/dijkstra"
)

// Check audits the heuristics of g for the given goal.
//
// Roads are undirected, so the distance from the goal to v equals the
// distance from v to the goal. Cities without a heuristic are listed in
// Missing and skipped by both the admissibility and the consistency scans.
func Check(g *core.Graph, goal string) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if goal == "" {
		return nil, ErrEmptyGoal
	}
	if !g.HasCity(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goal))
	if err != nil {
		return nil, fmt.Errorf("heuristic: exact distances from %q: %w", goal, err)
	}

	rep := &Report{Goal: goal}
	rep.GoalEstimate, _ = g.Heuristic(goal)

	for _, city := range g.Cities() {
		actual := dist[city]
		if actual == dijkstra.Unreachable {
			rep.Unreachable = append(rep.Unreachable, city)
		}

		h, ok := g.Heuristic(city)
		if !ok {
			rep.Missing = append(rep.Missing, city)
			continue
		}
		if actual != dijkstra.Unreachable && h > actual {
			rep.Overestimates = append(rep.Overestimates, Overestimate{City: city, Estimate: h, Actual: actual})
		}
	}

	for _, road := range g.Roads() {
		hu, okU := g.Heuristic(road.From)
		hv, okV := g.Heuristic(road.To)
		if !okU || !okV {
			continue
		}
		if hu > road.Distance+hv {
			rep.Inconsistencies = append(rep.Inconsistencies,
				Inconsistency{From: road.From, To: road.To, HFrom: hu, HTo: hv, Distance: road.Distance})
		}
		if hv > road.Distance+hu {
			rep.Inconsistencies = append(rep.Inconsistencies,
				Inconsistency{From: road.To, To: road.From, HFrom: hv, HTo: hu, Distance: road.Distance})
		}
	}

	return rep, nil
}
