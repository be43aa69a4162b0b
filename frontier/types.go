// SPDX-License-Identifier: MIT
// Package: roadsearch/frontier
//
// types.go - Entry, Option, sentinel errors.

package frontier

import (
	"errors"

	"github.com/katalvlaran/roadsearch/arena"
)

// ErrEmpty is returned by PopMin when no entries remain.
var ErrEmpty = errors.New("frontier: empty")

// Entry is one frontier element.
type Entry struct {
	// Handle addresses the search node in the run's arena.
	Handle arena.Handle

	// Priority is the ordering key; smaller pops first.
	Priority int64

	// Seq is the insertion sequence number; among equal priorities the smaller Seq pops first.
	Seq uint64
}

// less orders entries by (Priority, Seq).
func less(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return a.Seq < b.Seq
}

// Ordering selects the internal layout of a Queue.
type Ordering int

const (
	// Heap keeps entries in a binary min-heap: O(log n) push and pop.
	Heap Ordering = iota

	// LinearScan keeps entries in insertion order and scans for the minimum
	// on every pop: O(1) push, O(n) pop.
	LinearScan
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Heap:
		return "heap"
	case LinearScan:
		return "linear"
	default:
		return "unknown"
	}
}

// Option configures a Queue.
type Option func(*options)

type options struct {
	ordering Ordering
	capHint  int
}

// WithLinearScan selects the LinearScan ordering.
func WithLinearScan() Option {
	return func(o *options) { o.ordering = LinearScan }
}

// WithOrdering selects the ordering explicitly. Panics on an unknown value.
func WithOrdering(ord Ordering) Option {
	if ord != Heap && ord != LinearScan {
		panic("frontier: WithOrdering(unknown)")
	}
	return func(o *options) { o.ordering = ord }
}

// WithCapacityHint preallocates room for n entries. Panics on negative n.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic("frontier: WithCapacityHint(negative)")
	}
	return func(o *options) { o.capHint = n }
}
