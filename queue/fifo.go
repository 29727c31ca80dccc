// File: queue/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fifo narrows the ring engine to enqueue-at-back, dequeue-at-front.

package queue

import (
	"iter"

	"github.com/momentics/hioload-queue/api"
	"github.com/momentics/hioload-queue/internal/ring"
)

// Ensure compile-time compliance.
var (
	_ api.Fifo[any]     = (*Fifo[any])(nil)
	_ api.Iterable[any] = (*Fifo[any])(nil)
	_ api.StatsProvider = (*Fifo[any])(nil)
)

// Fifo is an unbounded first-in/first-out queue.
type Fifo[T any] struct {
	r *ring.Engine[T]
}

// NewFifo creates an empty queue with the default capacity.
func NewFifo[T any](opts ...Option[T]) *Fifo[T] {
	return &Fifo[T]{r: newEngine("fifo", opts)}
}

// NewFifoWithCapacity creates an empty queue that holds at least n items
// before reallocating.
func NewFifoWithCapacity[T any](n int, opts ...Option[T]) *Fifo[T] {
	return NewFifo(append([]Option[T]{WithCapacity[T](n)}, opts...)...)
}

// Enqueue appends item at the back.
func (q *Fifo[T]) Enqueue(item T) { q.r.PushBack(item) }

// Dequeue removes and returns the oldest item; ok is false if empty.
func (q *Fifo[T]) Dequeue() (T, bool) { return q.r.PopFront() }

// Peek returns the oldest item without removing it.
func (q *Fifo[T]) Peek() (item T, ok bool) {
	p, ok := q.r.PeekFront()
	if !ok {
		return item, false
	}
	return *p, true
}

// Len returns the number of queued items.
func (q *Fifo[T]) Len() int { return q.r.Len() }

// Cap returns the current backing capacity.
func (q *Fifo[T]) Cap() int { return q.r.Cap() }

// IsEmpty reports whether the queue holds nothing.
func (q *Fifo[T]) IsEmpty() bool { return q.r.IsEmpty() }

// Clear removes all items, keeping the allocated capacity.
func (q *Fifo[T]) Clear() { q.r.Clear() }

// All yields items oldest first without dequeuing them.
func (q *Fifo[T]) All() iter.Seq[T] { return q.r.All() }

// Stats returns occupancy and growth counters.
func (q *Fifo[T]) Stats() api.Stats { return q.r.Stats() }
