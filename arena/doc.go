// SPDX-License-Identifier: MIT

// Package arena stores the search nodes of one search run and rebuilds routes
// from them.
//
// Every node is addressed by an integer Handle instead of a pointer. A node
// records its city, accumulated cost g, frontier priority and the handle of its
// parent, so a route is recovered by following parent handles back to the
// start node (Parent == NoParent) and reversing.
//
// Lifecycle:
//
//	store := arena.New(arena.DefaultCapacity) // one per run
//	h, err := store.Allocate("Malaga", 0, 548, arena.NoParent)
//	...
//	path, err := store.Path(goalHandle)
//
// The store is bounded. Once Cap() nodes exist, Allocate fails with
// ErrCapacityExceeded; a run that hits the bound is lost rather than grown.
package arena
