// File: internal/ring/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Engine is an unbounded double-ended ring buffer. Pushes at either end
// reallocate the store to a larger one when it is full; pops and peeks
// never allocate.

package ring

import (
	"iter"
	"unsafe"

	"github.com/momentics/hioload-queue/api"
	"github.com/momentics/hioload-queue/internal/assert"
)

// Ensure compile-time interface compliance.
var _ api.StatsProvider = (*Engine[any])(nil)

// Hooks are optional callbacks invoked by the engine.
type Hooks[T any] struct {
	// Clone, when set, produces the copy that is actually stored on push.
	Clone func(T) T
	// OnGrow is called after every reallocation with the old and new capacity.
	OnGrow func(from, to int)
}

// Engine holds the logical window [head, head+size) mod len(buf).
// tail is the slot the next PushBack writes to.
type Engine[T any] struct {
	buf    []T
	size   int
	head   int
	tail   int
	policy Policy
	hooks  Hooks[T]
	grows  int
	peak   int
}

// New allocates an empty engine sized by p.InitialCapacity.
func New[T any](p Policy, hooks Hooks[T]) *Engine[T] {
	p = p.Normalize()
	var zero T
	return &Engine[T]{
		buf:    make([]T, p.Initial(unsafe.Sizeof(zero))),
		policy: p,
		hooks:  hooks,
	}
}

// PushFront inserts item before the current front element.
func (e *Engine[T]) PushFront(item T) {
	if e.size == len(e.buf) {
		e.grow()
	}
	e.head = WrapDec(e.head, len(e.buf))
	e.buf[e.head] = e.store(item)
	e.inserted()
}

// PushBack inserts item after the current back element.
func (e *Engine[T]) PushBack(item T) {
	if e.size == len(e.buf) {
		e.grow()
	}
	e.buf[e.tail] = e.store(item)
	e.tail = WrapInc(e.tail, len(e.buf))
	e.inserted()
}

// PopFront removes and returns the front element; ok is false if empty.
func (e *Engine[T]) PopFront() (item T, ok bool) {
	if e.size == 0 {
		return item, false
	}
	var zero T
	item = e.buf[e.head]
	e.buf[e.head] = zero
	e.head = WrapInc(e.head, len(e.buf))
	e.size--
	return item, true
}

// PopBack removes and returns the back element; ok is false if empty.
func (e *Engine[T]) PopBack() (item T, ok bool) {
	if e.size == 0 {
		return item, false
	}
	var zero T
	e.tail = WrapDec(e.tail, len(e.buf))
	item = e.buf[e.tail]
	e.buf[e.tail] = zero
	e.size--
	return item, true
}

// PeekFront returns a pointer to the front element, valid until the next
// mutation. ok is false if empty.
func (e *Engine[T]) PeekFront() (*T, bool) {
	if e.size == 0 {
		return nil, false
	}
	return &e.buf[e.head], true
}

// PeekBack returns a pointer to the back element, valid until the next
// mutation. ok is false if empty.
func (e *Engine[T]) PeekBack() (*T, bool) {
	if e.size == 0 {
		return nil, false
	}
	return &e.buf[WrapDec(e.tail, len(e.buf))], true
}

// Len returns the number of elements held.
func (e *Engine[T]) Len() int { return e.size }

// Cap returns the current store capacity.
func (e *Engine[T]) Cap() int { return len(e.buf) }

// IsEmpty reports whether Len is zero.
func (e *Engine[T]) IsEmpty() bool { return e.size == 0 }

// Clear drops every element but keeps the store.
func (e *Engine[T]) Clear() {
	clear(e.buf)
	e.size, e.head, e.tail = 0, 0, 0
}

// All yields the elements front to back. The engine must not be mutated
// during iteration.
func (e *Engine[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx := e.head
		for i := 0; i < e.size; i++ {
			if !yield(e.buf[idx]) {
				return
			}
			idx = WrapInc(idx, len(e.buf))
		}
	}
}

// Stats returns a snapshot of occupancy and growth history.
func (e *Engine[T]) Stats() api.Stats {
	return api.Stats{Len: e.size, Cap: len(e.buf), Grows: e.grows, Peak: e.peak}
}

func (e *Engine[T]) store(item T) T {
	if e.hooks.Clone != nil {
		return e.hooks.Clone(item)
	}
	return item
}

func (e *Engine[T]) inserted() {
	e.size++
	if e.size > e.peak {
		e.peak = e.size
	}
}

func (e *Engine[T]) grow() {
	var zero T
	next := e.policy.Next(e.size, unsafe.Sizeof(zero))
	assert.Check(next > e.size, "growth did not enlarge the store", "size", e.size, "capacity", next)
	e.reallocate(next)
}

// reallocate moves the logical window to the start of a new store of the
// given capacity. Shrinking below size is a fatal internal error.
func (e *Engine[T]) reallocate(capacity int) {
	assert.Check(capacity >= e.size && capacity >= MinCapacity,
		"reallocation smaller than queue size", "size", e.size, "capacity", capacity)
	old := e.buf
	buf := make([]T, capacity)
	if e.head+e.size > len(old) {
		// Window wraps: [head, end) then [0, tail).
		n := copy(buf, old[e.head:])
		copy(buf[n:], old[:e.tail])
	} else {
		copy(buf, old[e.head:e.head+e.size])
	}
	e.buf = buf
	e.head = 0
	e.tail = e.size
	if e.tail == capacity {
		e.tail = 0
	}
	assert.InRange(e.tail, 0, capacity-1, "tail")
	e.grows++
	if e.hooks.OnGrow != nil {
		e.hooks.OnGrow(len(old), capacity)
	}
}
