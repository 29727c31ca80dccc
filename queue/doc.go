// Package queue
// Author: momentics <momentics@gmail.com>
//
// Unbounded FIFO and double-ended queues over a reallocating ring buffer.
// Both containers grow geometrically when full, so pushes are amortized
// O(1) and pops never allocate. Neither type is safe for concurrent use;
// guard with a mutex if a queue is shared between goroutines.
package queue
