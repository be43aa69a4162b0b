// SPDX-License-Identifier: MIT

// Package search implements Greedy Best-First Search and A* Search between a
// start and a goal city of a core.Graph.
//
// Both strategies share one driver (Stepper) and differ only in the frontier
// priority of a node:
//
//	Greedy: f = h(city)
//	A*:     f = g + h(city)
//
// where g is the road distance accumulated from the start and h the city's
// heuristic (core.UnknownHeuristic when missing).
//
// Run lifecycle:
//
//	Running ──pop goal──▶ GoalFound
//	   │
//	   ├──frontier empty──▶ Exhausted   (negative result, not an error)
//	   │
//	   └──fatal error─────▶ Failed      (arena capacity, inconsistent graph)
//
// The run stops on the first pop of the goal. For A* this returns a shortest
// route provided h never overestimates the remaining distance; Greedy gives no
// such guarantee and may return a longer route.
//
// Duplicate handling:
//
//   - Greedy keeps a visited set of every city it has generated and never
//     generates a city twice, even if a shorter route shows up later.
//   - A* remembers the best g generated for every city and generates a city
//     again only when g strictly improves. The older entry is not removed from
//     the frontier; when popped it is expanded like any other entry. Its f is
//     never smaller than the newer entry's, so the newer one always pops first
//     and the returned cost is unaffected. WithSkipStale discards such entries
//     on pop instead, which lowers expansion counts.
//
// Ties between equal priorities are resolved in favour of the entry pushed
// first, so a run is fully deterministic for a given graph.
//
// Example:
//
//	res, err := search.RunAStar(g, search.Start("Malaga"), search.Goal("Valladolid"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path found")
//	}
//	fmt.Println(res.Path, res.Distance)
//
// For UIs and debugging, NewStepper exposes the same run one expansion at a
// time; every step appends Events (expand / generate / stale) to the trace.
package search
