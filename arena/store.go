// SPDX-License-Identifier: MIT
// Package: roadsearch/arena
//
// store.go - bounded, append-only storage of search nodes.
//
// Contract:
//   • Allocate appends; nothing is ever removed, mutated or reused.
//   • A parent handle is always smaller than its child's handle, so every
//     parent chain is finite and ends at NoParent.
//   • Full store ⇒ ErrCapacityExceeded; the caller decides the run is lost.

package arena

import "fmt"

// Store owns every search node of a single run.
// It is not safe for concurrent use; each run allocates its own Store.
type Store struct {
	nodes    []Node
	capacity int
}

// New returns an empty Store that accepts up to capacity nodes.
// A capacity <= 0 selects DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Store{
		nodes:    make([]Node, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// Allocate appends a node and returns its handle.
//
// Errors:
//   - ErrCapacityExceeded when Len() == Cap().
//   - ErrInvalidParent when parent is not NoParent and not yet allocated.
//
// Complexity: O(1) amortized.
func (s *Store) Allocate(city string, cost, priority int64, parent Handle) (Handle, error) {
	if len(s.nodes) >= s.capacity {
		return NoParent, fmt.Errorf("%w: %d nodes, allocating %q", ErrCapacityExceeded, s.capacity, city)
	}
	if parent != NoParent && !s.owns(parent) {
		return NoParent, fmt.Errorf("%w: %d", ErrInvalidParent, parent)
	}

	h := Handle(len(s.nodes))
	s.nodes = append(s.nodes, Node{
		City:     city,
		Cost:     cost,
		Priority: priority,
		Parent:   parent,
	})

	return h, nil
}

// Node returns the record addressed by h.
func (s *Store) Node(h Handle) (Node, error) {
	if !s.owns(h) {
		return Node{}, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}

	return s.nodes[h], nil
}

// Len returns the number of allocated nodes.
func (s *Store) Len() int { return len(s.nodes) }

// Cap returns the maximum number of nodes.
func (s *Store) Cap() int { return s.capacity }

func (s *Store) owns(h Handle) bool {
	return h >= 0 && int(h) < len(s.nodes)
}
