// File: internal/assert/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fail-fast checks for internal invariants. A failed check means the
// container's index arithmetic can no longer be trusted, so it is fatal.

package assert

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/momentics/hioload-queue/api"
)

// Logger receives the critical report before the panic. Tests may swap it.
var Logger = log.Default()

// Check panics with an *api.Error carrying api.ErrCodeInternal when cond is false.
// Context pairs are attached to the error as key/value.
func Check(cond bool, msg string, kv ...any) {
	if cond {
		return
	}
	Fail(msg, kv...)
}

// Fail reports and panics unconditionally.
func Fail(msg string, kv ...any) {
	err := api.NewError(api.ErrCodeInternal, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		err.WithContext(fmt.Sprint(kv[i]), kv[i+1])
	}
	Logger.Printf("[CRITICAL] assertion failed: %v\nStack: %s", err, debug.Stack())
	panic(err)
}

// InRange checks that val is within [lo, hi].
func InRange(val, lo, hi int, name string) {
	if val >= lo && val <= hi {
		return
	}
	Fail(name+" out of range", "value", val, "min", lo, "max", hi)
}
