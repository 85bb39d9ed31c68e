// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe pool configuration store with dynamic update and
// hot-reload propagation. Pools consult the store at creation time;
// reload listeners let long-lived registries react to capacity changes.

package control

import (
	"sync"
)

// DefaultPoolCapacity is the per-type free-list capacity used when no
// override is configured.
const DefaultPoolCapacity = 64

// PoolConfig is a dynamic per-type capacity map with atomic snapshot and
// listener support. Keys are type names as reported by reflect.Type.
type PoolConfig struct {
	mu         sync.RWMutex
	capacities map[string]int
	listeners  []func()
}

// NewPoolConfig initializes a config store with no overrides.
func NewPoolConfig() *PoolConfig {
	return &PoolConfig{
		capacities: make(map[string]int),
	}
}

// Capacity returns the configured capacity for a type key, or
// DefaultPoolCapacity when no override exists.
func (pc *PoolConfig) Capacity(typeKey string) int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if n, ok := pc.capacities[typeKey]; ok {
		return n
	}
	return DefaultPoolCapacity
}

// SetCapacity overrides the capacity for a type key and dispatches reload.
// Non-positive values reset the override to the default.
func (pc *PoolConfig) SetCapacity(typeKey string, capacity int) {
	pc.mu.Lock()
	if capacity <= 0 {
		delete(pc.capacities, typeKey)
	} else {
		pc.capacities[typeKey] = capacity
	}
	listeners := pc.listeners
	pc.mu.Unlock()
	for _, fn := range listeners {
		go fn()
	}
}

// GetSnapshot returns a copy of all configured overrides.
func (pc *PoolConfig) GetSnapshot() map[string]int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	out := make(map[string]int, len(pc.capacities))
	for k, v := range pc.capacities {
		out[k] = v
	}
	return out
}

// OnReload registers a listener hook called on capacity changes.
func (pc *PoolConfig) OnReload(fn func()) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.listeners = append(pc.listeners, fn)
}
