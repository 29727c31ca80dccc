// File: internal/ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements the growable circular buffer shared by the
// FIFO and Deque containers: wrap-around index helpers, the growth
// policy, and a four-ended engine that reallocates to a larger store
// when full while preserving logical order.
//
// Nothing in this package is safe for concurrent use.
package ring
