// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Point-in-time statistics reported by queue containers, and the debug
// contract that exposes them.

package api

// Stats is a snapshot of a container's occupancy and growth history.
type Stats struct {
	Len   int // logical elements held
	Cap   int // capacity of the backing store
	Grows int // reallocations performed so far
	Peak  int // largest Len ever observed
}

// StatsProvider is implemented by every container in this module.
type StatsProvider interface {
	Stats() Stats
}

// Debug exposes runtime introspection over registered probes.
type Debug interface {
	// DumpState returns the current output of every probe.
	DumpState() map[string]any
	// RegisterProbe adds or replaces a named probe.
	RegisterProbe(name string, fn func() any)
}
