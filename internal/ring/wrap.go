// File: internal/ring/wrap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/hioload-queue/internal/assert"

// WrapInc returns (i+1) mod c. Indices past c are reduced first.
func WrapInc(i, c int) int {
	if c < 1 || i < 0 {
		assert.Fail("wrap increment precondition", "index", i, "capacity", c)
	}
	if i >= c {
		i %= c
	}
	if i+1 == c {
		return 0
	}
	return i + 1
}

// WrapDec returns (i-1) mod c without going negative.
func WrapDec(i, c int) int {
	if c < 1 || i < 0 {
		assert.Fail("wrap decrement precondition", "index", i, "capacity", c)
	}
	if i >= c {
		i %= c
	}
	if i == 0 {
		return c - 1
	}
	return i - 1
}
