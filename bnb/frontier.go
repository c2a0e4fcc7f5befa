// SPDX-License-Identifier: MIT

package bnb

import "container/heap"

// Frontier is a max-priority queue of pending states keyed by bound.
// Among equal bounds, states pop in insertion order.
type Frontier[S any] struct {
	items frontierPQ[S]
	seq   uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier[S any]() *Frontier[S] {
	return &Frontier[S]{}
}

// Len returns the number of pending states.
func (f *Frontier[S]) Len() int { return len(f.items) }

// Push inserts s with priority bound.
func (f *Frontier[S]) Push(s S, bound int) {
	heap.Push(&f.items, frontierItem[S]{state: s, bound: bound, seq: f.seq})
	f.seq++
}

// Pop removes the pending state with the highest bound. ok is false when
// the frontier is empty.
func (f *Frontier[S]) Pop() (s S, bound int, ok bool) {
	if len(f.items) == 0 {
		return s, 0, false
	}
	it := heap.Pop(&f.items).(frontierItem[S])

	return it.state, it.bound, true
}

// frontierItem is one heap entry.
type frontierItem[S any] struct {
	state S
	bound int
	seq   uint64
}

// frontierPQ implements heap.Interface as a max-heap on bound, then a
// min-heap on seq.
type frontierPQ[S any] []frontierItem[S]

func (pq frontierPQ[S]) Len() int { return len(pq) }

func (pq frontierPQ[S]) Less(i, j int) bool {
	if pq[i].bound != pq[j].bound {
		return pq[i].bound > pq[j].bound
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ[S]) Push(x any) { *pq = append(*pq, x.(frontierItem[S])) }

func (pq *frontierPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	var zero frontierItem[S]
	old[n-1] = zero // drop the state reference
	*pq = old[:n-1]

	return it
}
