// Package pqueue provides a generic min-priority queue ordered by a
// caller-supplied comparison.
//
// Overview:
//
//   - Queue[T] wraps container/heap behind a small typed API: Push, Pop, Peek,
//     Len and Items.
//   - Ordering is decided entirely by the less function given to New; the queue
//     never inspects T.
//   - Elements that compare equal leave the queue in insertion order (FIFO), so
//     a search driven by the queue is deterministic for a given input.
//
// Complexity:
//
//   - Push, Pop: O(log N)
//   - Peek, Len: O(1)
//   - Items:     O(N) (a copy of the current contents, in heap order)
//
// The less function is evaluated whenever the heap is restructured. Callers that
// order by a mutable key must not change that key while the element is queued;
// push a fresh element instead and discard the stale one when it is popped.
//
// Queue is not safe for concurrent use.
package pqueue
