// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road lifecycle and the two lookups the search relies on: Neighbors and EdgeWeight.
// Determinism:
//   - Roads() and Neighbors() follow road insertion order.
//   - EdgeWeight returns the first road inserted between a pair (parallel roads
//     are stored but never consulted for weight).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddRoad adds an undirected road between a and b, registering both cities if needed.
//
// Errors:
//   - ErrEmptyCityName if either name is empty.
//   - ErrLoopNotAllowed if a == b.
//   - ErrBadWeight if distance <= 0.
//
// Parallel roads are accepted; see EdgeWeight for how they resolve.
// Complexity: O(1) amortized.
func (g *Graph) AddRoad(a, b string, distance int64) error {
	if a == "" || b == "" {
		return ErrEmptyCityName
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, a)
	}
	if distance <= 0 {
		return fmt.Errorf("%w: %s-%s distance=%d", ErrBadWeight, a, b, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureCity(a)
	g.ensureCity(b)
	idx := len(g.roads)
	g.roads = append(g.roads, Road{From: a, To: b, Distance: distance})
	g.adjacency[a] = append(g.adjacency[a], idx)
	g.adjacency[b] = append(g.adjacency[b], idx)

	return nil
}

// Neighbors returns every city one road away from name, in road insertion
// order. A city joined by parallel roads appears once per road.
//
// Returns ErrCityNotFound for an unknown city; a known city without roads
// yields an empty slice.
// Complexity: O(deg(name)).
func (g *Graph) Neighbors(name string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.cities[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	idxs := g.adjacency[name]
	out := make([]Neighbor, 0, len(idxs))
	var r Road
	for _, idx := range idxs {
		r = g.roads[idx]
		other := r.To
		if r.To == name {
			other = r.From
		}
		out = append(out, Neighbor{City: other, Distance: r.Distance, Road: idx})
	}

	return out, nil
}

// EdgeWeight returns the distance of the first road joining a and b in either
// orientation. ok is false when no such road exists.
// Complexity: O(deg(a)).
func (g *Graph) EdgeWeight(a, b string) (distance int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var r Road
	for _, idx := range g.adjacency[a] {
		r = g.roads[idx]
		if (r.From == a && r.To == b) || (r.From == b && r.To == a) {
			return r.Distance, true
		}
	}

	return 0, false
}

// Roads returns a copy of all roads in insertion order.
// Complexity: O(E).
func (g *Graph) Roads() []Road {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Road, len(g.roads))
	copy(out, g.roads)

	return out
}

// RoadCount returns the number of roads, parallel roads included.
func (g *Graph) RoadCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.roads)
}
