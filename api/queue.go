// Package api
// Author: momentics@gmail.com
//
// Queue contracts shared by the reallocating ring-buffer containers.

package api

import "iter"

// Fifo is an unbounded first-in/first-out queue contract.
type Fifo[T any] interface {
	// Enqueue appends item at the back.
	Enqueue(item T)
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Peek returns the oldest item without removing it, false if empty.
	Peek() (T, bool)
	// Len returns current number of items.
	Len() int
}

// Deque is an unbounded double-ended queue contract.
type Deque[T any] interface {
	EnqueueFirst(item T)
	EnqueueLast(item T)
	DequeueFirst() (T, bool)
	DequeueLast() (T, bool)
	PeekFirst() (T, bool)
	PeekLast() (T, bool)
	Len() int
}

// Iterable is implemented by containers that can be walked front to back.
type Iterable[T any] interface {
	All() iter.Seq[T]
}
