// SPDX-License-Identifier: MIT

package search

import "container/heap"

// Entry is a frontier item: a state with the g- and f-scores it was pushed
// with. An entry whose G exceeds the ledger's current cost is stale.
type Entry struct {
	State State
	G     int64 // cumulative cost from the start
	F     int64 // G plus the heuristic to the goal
	seq   uint64
}

// Frontier is a min-priority queue of entries ordered by F ascending, ties
// broken by insertion order. It never decreases keys in place; callers push
// duplicates and discard stale entries when popped.
type Frontier struct {
	h   entryHeap
	seq uint64
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Push adds s with scores g and f.
// Complexity: O(log N).
func (q *Frontier) Push(s State, g, f int64) {
	q.seq++
	heap.Push(&q.h, Entry{State: s, G: g, F: f, seq: q.seq})
}

// Pop removes and returns the entry with the smallest F; ok is false when
// the frontier is empty.
// Complexity: O(log N).
func (q *Frontier) Pop() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.h).(Entry), true
}

// Len returns the number of queued entries, stale ones included.
func (q *Frontier) Len() int { return len(q.h) }

// entryHeap implements heap.Interface over Entry values.
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
