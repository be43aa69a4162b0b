// SPDX-License-Identifier: MIT

// Package dijkstra provides an exact shortest-path computation over core.Graph
// road maps.
//
// Overview:
//
//   - Dijkstra computes the minimum road distance from one source city to every
//     reachable city in O((V + E) log V), expanding the closest city first from
//     a min-heap.
//   - Roads are undirected and strictly positive, so no negative-weight
//     pre-scan is needed.
//
// Why it lives next to the informed searches:
//
//   - It is the reference answer for A*: with an admissible heuristic, A* must
//     return exactly dist[goal].
//   - Running it from the goal yields the true remaining distance of every city,
//     which is what package heuristic compares estimates against.
//
// Key features:
//
//   - ReturnPath: returns a predecessor map; PathTo rebuilds a route from it.
//   - MaxDistance: stops exploring beyond a given distance.
//   - InfEdgeThreshold: treats any road at or above the threshold as closed.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func PathTo(prev map[string]string, source, target string) ([]string, error)
//
//	  - dist: dist[v] = minimal distance from Source to v, or Unreachable.
//	  - prev: prev[v] = predecessor of v on one shortest path; "" for the source
//	          and unreachable cities. Nil unless WithReturnPath().
//
// Thread safety:
//
//   - Each call owns its state; the graph is only read, so concurrent calls
//     on one graph are safe.
package dijkstra
