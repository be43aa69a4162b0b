// SPDX-License-Identifier: MIT
// Package: roadsearch/frontier
//
// queue.go - the Queue facade and its two orderings.
//
// Both orderings pop the entry with the smallest (Priority, Seq). Seq is a
// counter assigned on Push, which makes the earliest-inserted entry win ties
// and gives the heap the same pop sequence as a first-minimum linear scan.

package frontier

import (
	"container/heap"

	"github.com/katalvlaran/roadsearch/arena"
)

// Queue is a min-priority collection of search-node handles.
// It is not safe for concurrent use.
type Queue struct {
	ordering Ordering
	nextSeq  uint64

	h   entryHeap // used by Heap
	lin []Entry   // used by LinearScan
}

// New returns an empty Queue; the default ordering is Heap.
func New(opts ...Option) *Queue {
	o := options{ordering: Heap}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue{ordering: o.ordering}
	switch o.ordering {
	case LinearScan:
		q.lin = make([]Entry, 0, o.capHint)
	default:
		q.h = make(entryHeap, 0, o.capHint)
		heap.Init(&q.h)
	}

	return q
}

// Ordering reports the layout chosen at construction.
func (q *Queue) Ordering() Ordering { return q.ordering }

// Push inserts handle with the given priority and returns the stored entry.
// Complexity: O(log n) for Heap, O(1) for LinearScan.
func (q *Queue) Push(h arena.Handle, priority int64) Entry {
	e := Entry{Handle: h, Priority: priority, Seq: q.nextSeq}
	q.nextSeq++

	if q.ordering == LinearScan {
		q.lin = append(q.lin, e)
		return e
	}
	heap.Push(&q.h, e)

	return e
}

// PopMin removes and returns the entry with the smallest priority, the
// earliest inserted among equals. Returns ErrEmpty when the queue is empty.
// Complexity: O(log n) for Heap, O(n) for LinearScan.
func (q *Queue) PopMin() (Entry, error) {
	if q.IsEmpty() {
		return Entry{}, ErrEmpty
	}
	if q.ordering == LinearScan {
		return q.popLinear(), nil
	}

	return heap.Pop(&q.h).(Entry), nil
}

// Peek returns the entry PopMin would return without removing it.
func (q *Queue) Peek() (Entry, error) {
	if q.IsEmpty() {
		return Entry{}, ErrEmpty
	}
	if q.ordering == LinearScan {
		return q.lin[q.minLinear()], nil
	}

	return q.h[0], nil
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	if q.ordering == LinearScan {
		return len(q.lin)
	}

	return q.h.Len()
}

// IsEmpty reports whether no entries remain.
func (q *Queue) IsEmpty() bool { return q.Len() == 0 }

// minLinear returns the index of the first minimal entry.
func (q *Queue) minLinear() int {
	best := 0
	for i := 1; i < len(q.lin); i++ {
		if q.lin[i].Priority < q.lin[best].Priority {
			best = i
		}
	}

	return best
}

// popLinear removes the first minimal entry and shifts the tail left so the
// remaining entries keep their insertion order.
func (q *Queue) popLinear() Entry {
	best := q.minLinear()
	e := q.lin[best]
	copy(q.lin[best:], q.lin[best+1:])
	q.lin = q.lin[:len(q.lin)-1]

	return e
}

// entryHeap is a container/heap implementation ordered by (Priority, Seq).
type entryHeap []Entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less compares priority first, then insertion sequence.
func (h entryHeap) Less(i, j int) bool { return less(h[i], h[j]) }

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x, which must be an Entry. Called by heap.Push.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

// Pop removes the last element. Called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
