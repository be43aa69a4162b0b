// SPDX-License-Identifier: MIT

// Package core provides the static road map consumed by the search packages.
//
// A Graph holds named cities, each optionally carrying a heuristic estimate of
// the remaining distance to a goal, and undirected roads with positive integer
// distances between them.
//
// Lookups:
//
//	Heuristic(name)          (h, ok)  – ok == false when no estimate was loaded
//	HeuristicOrDefault(name) h        – UnknownHeuristic (9999) when missing
//	Neighbors(name)          []Neighbor in road insertion order
//	EdgeWeight(a, b)         (d, ok)  – first road between a and b, either orientation
//
// Parallel roads:
//
//	AddRoad accepts several roads between the same pair. Neighbors reports one
//	entry per road, while EdgeWeight always answers with the first one inserted.
//	This mirrors a plain scan over the road list and is kept as is.
//
// Missing data:
//
//	The graph trusts its loader. A city without a heuristic is not an error;
//	priority computations fall back to the sentinel so such cities sort last.
//
// Thread safety:
//
//	All methods lock internally. Build the graph once, then share it freely
//	between concurrent read-only users.
package core
