// SPDX-License-Identifier: MIT

// Package frontier implements the open list of an informed search: a
// min-priority collection of arena handles.
//
// Tie-breaking:
//
//	Entries with equal priority leave the queue in the order they entered it.
//	Each Push stamps a sequence number that acts as a secondary key, so the
//	result is deterministic regardless of the internal layout.
//
// Orderings:
//
//	Heap       – container/heap binary heap, O(log n) push/pop (default).
//	LinearScan – plain slice scanned for its first minimum on each pop,
//	             O(1) push, O(n) pop. Fine for maps with tens of cities.
//
// Both orderings produce identical pop sequences for identical push sequences.
//
// Entries are never updated or removed other than by PopMin. A search that
// finds a cheaper route to a city simply pushes another entry; the older one
// stays queued.
package frontier
