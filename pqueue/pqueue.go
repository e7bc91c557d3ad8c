package pqueue

import "container/heap"

// Less reports whether a must leave the queue before b.
type Less[T any] func(a, b T) bool

// Queue is a min-priority queue of T.
type Queue[T any] struct {
	h   entries[T]
	seq uint64 // insertion counter used to break ties
}

// New returns an empty Queue ordered by less.
// Panics if less is nil.
func New[T any](less Less[T]) *Queue[T] {
	if less == nil {
		panic("pqueue: less function is nil")
	}

	return &Queue[T]{h: entries[T]{less: less}}
}

// Push inserts v into the queue.
func (q *Queue[T]) Push(v T) {
	q.seq++
	heap.Push(&q.h, entry[T]{value: v, seq: q.seq})
}

// Pop removes and returns the minimum element.
// ok is false if the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.h.items) == 0 {
		return v, false
	}

	return heap.Pop(&q.h).(entry[T]).value, true
}

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if len(q.h.items) == 0 {
		return v, false
	}

	return q.h.items[0].value, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Items returns a snapshot of the queued elements in heap order.
// The returned slice is owned by the caller.
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.h.items))
	for i, e := range q.h.items {
		out[i] = e.value
	}

	return out
}

// Reset drops every queued element, keeping the allocated capacity.
func (q *Queue[T]) Reset() {
	clear(q.h.items)
	q.h.items = q.h.items[:0]
	q.seq = 0
}

// entry pairs a value with its insertion sequence number.
type entry[T any] struct {
	value T
	seq   uint64
}

// entries implements heap.Interface over entry[T].
type entries[T any] struct {
	items []entry[T]
	less  Less[T]
}

func (h entries[T]) Len() int { return len(h.items) }

// Less orders by the caller comparison, then by insertion order.
func (h entries[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}

	return a.seq < b.seq
}

func (h entries[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entries[T]) Push(x any) { h.items = append(h.items, x.(entry[T])) }

func (h *entries[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // release the reference held by the backing array
	h.items = old[:n-1]

	return item
}
