// File: queue/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deque exposes all four ends of the ring engine.

package queue

import (
	"iter"

	"github.com/momentics/hioload-queue/api"
	"github.com/momentics/hioload-queue/internal/ring"
)

var (
	_ api.Deque[any]    = (*Deque[any])(nil)
	_ api.Iterable[any] = (*Deque[any])(nil)
	_ api.StatsProvider = (*Deque[any])(nil)
)

// Deque is an unbounded double-ended queue.
type Deque[T any] struct {
	r *ring.Engine[T]
}

// NewDeque creates an empty deque with the default capacity.
func NewDeque[T any](opts ...Option[T]) *Deque[T] {
	return &Deque[T]{r: newEngine("deque", opts)}
}

// NewDequeWithCapacity creates an empty deque that holds at least n items
// before reallocating.
func NewDequeWithCapacity[T any](n int, opts ...Option[T]) *Deque[T] {
	return NewDeque(append([]Option[T]{WithCapacity[T](n)}, opts...)...)
}

// EnqueueFirst inserts item at the front.
func (d *Deque[T]) EnqueueFirst(item T) { d.r.PushFront(item) }

// EnqueueLast inserts item at the back.
func (d *Deque[T]) EnqueueLast(item T) { d.r.PushBack(item) }

// DequeueFirst removes and returns the front item.
func (d *Deque[T]) DequeueFirst() (T, bool) { return d.r.PopFront() }

// DequeueLast removes and returns the back item.
func (d *Deque[T]) DequeueLast() (T, bool) { return d.r.PopBack() }

// PeekFirst returns the front item without removing it.
func (d *Deque[T]) PeekFirst() (item T, ok bool) {
	p, ok := d.r.PeekFront()
	if !ok {
		return item, false
	}
	return *p, true
}

// PeekLast returns the back item without removing it.
func (d *Deque[T]) PeekLast() (item T, ok bool) {
	p, ok := d.r.PeekBack()
	if !ok {
		return item, false
	}
	return *p, true
}

// Len returns the number of items held.
func (d *Deque[T]) Len() int { return d.r.Len() }

// Cap returns the current backing capacity.
func (d *Deque[T]) Cap() int { return d.r.Cap() }

// IsEmpty reports whether the deque holds nothing.
func (d *Deque[T]) IsEmpty() bool { return d.r.IsEmpty() }

// Clear removes all items, keeping the allocated capacity.
func (d *Deque[T]) Clear() { d.r.Clear() }

// All yields items front to back without removing them.
func (d *Deque[T]) All() iter.Seq[T] { return d.r.All() }

// Stats returns occupancy and growth counters.
func (d *Deque[T]) Stats() api.Stats { return d.r.Stats() }
