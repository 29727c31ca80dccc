// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Metrics registry holding the last published queue statistics.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-queue/api"
)

// MetricsRegistry holds flat key/value metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Publish records src's current statistics as <name>.len, .cap, .grows, .peak.
func (mr *MetricsRegistry) Publish(name string, src api.StatsProvider) {
	st := src.Stats()
	mr.mu.Lock()
	mr.metrics[name+".len"] = st.Len
	mr.metrics[name+".cap"] = st.Cap
	mr.metrics[name+".grows"] = st.Grows
	mr.metrics[name+".peak"] = st.Peak
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last write.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
