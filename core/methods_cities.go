// SPDX-License-Identifier: MIT
//
// File: methods_cities.go
// Role: City lifecycle and heuristic queries.
// Determinism:
//   - Cities() returns names in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddCity registers a city without a heuristic. Adding an existing city is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddCity(name string) error {
	if name == "" {
		return ErrEmptyCityName
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureCity(name)

	return nil
}

// ensureCity inserts name if absent and returns its record. Caller holds the write lock.
func (g *Graph) ensureCity(name string) *City {
	if c, ok := g.cities[name]; ok {
		return c
	}
	c := &City{Name: name}
	g.cities[name] = c
	g.order = append(g.order, name)

	return c
}

// SetHeuristic records the heuristic estimate h for name, adding the city if needed.
//
// A city keeps its first heuristic: a second call returns ErrDuplicateHeuristic
// and leaves the stored value untouched. Negative estimates are rejected with
// ErrNegativeHeuristic.
// Complexity: O(1) amortized.
func (g *Graph) SetHeuristic(name string, h int64) error {
	if name == "" {
		return ErrEmptyCityName
	}
	if h < 0 {
		return ErrNegativeHeuristic
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.ensureCity(name)
	if c.HasHeuristic {
		return ErrDuplicateHeuristic
	}
	c.Heuristic = h
	c.HasHeuristic = true

	return nil
}

// HasCity reports whether name was added to the graph.
func (g *Graph) HasCity(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cities[name]

	return ok
}

// City returns a copy of the city record.
func (g *Graph) City(name string) (City, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.cities[name]
	if !ok {
		return City{}, ErrCityNotFound
	}

	return *c, nil
}

// Heuristic returns the estimate for name. ok is false when the city is
// unknown or has no heuristic entry.
// Complexity: O(1).
func (g *Graph) Heuristic(name string) (h int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, found := g.cities[name]
	if !found || !c.HasHeuristic {
		return 0, false
	}

	return c.Heuristic, true
}

// HeuristicOrDefault returns the estimate for name, or the graph's
// unknown-heuristic sentinel when there is none. Search priorities use this form.
func (g *Graph) HeuristicOrDefault(name string) int64 {
	if h, ok := g.Heuristic(name); ok {
		return h
	}

	return g.UnknownHeuristic()
}

// UnknownHeuristic returns the sentinel used for missing heuristics.
func (g *Graph) UnknownHeuristic() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.unknownHeuristic
}

// Cities returns all city names in insertion order.
// Complexity: O(V).
func (g *Graph) Cities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// CityCount returns the number of cities.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
