// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection and metrics layer for hioload-queue containers.
//
// The registries are goroutine-safe, but the containers are not. Probes
// call back into the container, so DumpState must be invoked from the
// goroutine that owns the registered queues.
package control
