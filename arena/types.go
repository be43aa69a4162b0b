// SPDX-License-Identifier: MIT
// Package: roadsearch/arena
//
// types.go - Handle, Node, sentinel errors and constants.

package arena

import "errors"

// DefaultCapacity is the number of search nodes a Store holds when no
// explicit capacity is requested.
const DefaultCapacity = 1000

// Handle addresses a Node inside one Store. Handles are assigned 0, 1, 2, …
// in allocation order and never reused.
type Handle int

// NoParent marks the start node, the only node without a parent.
const NoParent Handle = -1

// Valid reports whether h could address a node (h >= 0).
func (h Handle) Valid() bool { return h >= 0 }

// Node is an immutable search-node record.
type Node struct {
	// City is the name of the city this node stands on.
	City string

	// Cost is the accumulated road distance from the start (g).
	Cost int64

	// Priority is the frontier key fixed at allocation (h for Greedy, g+h for A*).
	Priority int64

	// Parent is the handle of the node this one was generated from, or NoParent.
	Parent Handle
}

// Sentinel errors returned by Store.
var (
	// ErrCapacityExceeded is returned by Allocate once the store is full.
	ErrCapacityExceeded = errors.New("arena: capacity exceeded")

	// ErrInvalidHandle is returned when a handle does not address an allocated node.
	ErrInvalidHandle = errors.New("arena: invalid handle")

	// ErrInvalidParent is returned by Allocate when the parent is neither
	// NoParent nor an already allocated handle.
	ErrInvalidParent = errors.New("arena: invalid parent handle")
)
