// SPDX-License-Identifier: MIT
// Package: roadsearch/builder
//
// impl_heuristic.go - ExactHeuristics(goal, num, den): label every city with a
// scaled copy of its true remaining distance to goal.
//
// Contract:
//   - goal must already exist in g (run after the topology constructors).
//   - num ≥ 0 and den > 0 (else ErrBadScale).
//   - h(v) = dist(v, goal) * num / den (integer division, rounds down).
//     num ≤ den yields an admissible and consistent heuristic; num > den yields
//     an overestimating one, useful for negative fixtures.
//   - Cities that cannot reach goal get no heuristic and fall back to the
//     graph's unknown-heuristic sentinel during search.
//   - Cities are labelled in g.Cities() order.
//
// Complexity: one Dijkstra run, O((V + E) log V).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/dijkstra"
)

const methodExactHeuristics = "ExactHeuristics"

// ExactHeuristics returns a Constructor that assigns heuristics derived from
// exact shortest distances to goal.
func ExactHeuristics(goal string, num, den int64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if num < 0 || den <= 0 {
			return builderErrorf(methodExactHeuristics, "scale %d/%d: %w", num, den, ErrBadScale)
		}

		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goal))
		if err != nil {
			return fmt.Errorf("%s: %w", methodExactHeuristics, err)
		}

		for _, city := range g.Cities() {
			d := dist[city]
			if d == dijkstra.Unreachable {
				continue
			}
			if err = g.SetHeuristic(city, d*num/den); err != nil {
				return fmt.Errorf("%s: SetHeuristic(%s): %w", methodExactHeuristics, city, err)
			}
		}

		return nil
	}
}
