// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for system-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds mutable and read-only metrics.
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

// PublishCounters copies a counter snapshot into the registry under
// conventional keys.
func (mr *MetricsRegistry) PublishCounters(c *Counters) {
	s := c.Snapshot()
	mr.mu.Lock()
	mr.metrics["futures.source_allocs"] = s.SourceAllocs
	mr.metrics["futures.box_allocs"] = s.BoxAllocs
	mr.metrics["futures.value_box_allocs"] = s.ValueBoxAllocs
	mr.metrics["futures.pool_hits"] = s.PoolHits
	mr.metrics["futures.pool_misses"] = s.PoolMisses
	mr.metrics["futures.spin_waits"] = s.SpinWaits
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

// Updated returns the time of the last registry mutation.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
