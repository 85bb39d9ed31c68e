// File: completion/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-type source pools on a lock-free free-list, plus the type-indexed
// registry used by the facade. Pool exhaustion is never an error: an
// empty free-list falls back to ordinary allocation, a full one discards.

package completion

import (
	"reflect"
	"sync"

	"github.com/momentics/hioload-futures/continuation"
	"github.com/momentics/hioload-futures/control"
	"github.com/momentics/hioload-futures/internal/concurrency"
)

// Pool rents completion states for results of type T. Safe for
// concurrent use from unrelated operations.
type Pool[T any] struct {
	free     *concurrency.LockFreeQueue[*source[T]]
	boxes    *continuation.Pool[T]
	counters *control.Counters
}

// NewPool creates a pool with the given free-list capacity. Nil counters
// fall back to the process-wide set.
func NewPool[T any](capacity int, counters *control.Counters) *Pool[T] {
	if capacity <= 0 {
		capacity = control.DefaultPoolCapacity
	}
	if counters == nil {
		counters = control.Default()
	}
	return &Pool[T]{
		free:     concurrency.NewLockFreeQueue[*source[T]](capacity),
		boxes:    continuation.NewPool[T](counters),
		counters: counters,
	}
}

// New rents a completion state (or allocates fresh when the free-list is
// empty) and returns the handle for its current generation.
func (p *Pool[T]) New() Handle[T] {
	s, ok := p.free.Dequeue()
	if ok {
		p.counters.IncPoolHit()
	} else {
		s = &source[T]{owner: p}
		s.state.Store(packState(1, phasePending))
		p.counters.IncSourceAlloc()
		p.counters.IncPoolMiss()
	}
	return Handle[T]{src: s, token: stateToken(s.state.Load())}
}

// put returns a recycled source to the free-list; discarded when full.
func (p *Pool[T]) put(s *source[T]) {
	_ = p.free.Enqueue(s)
}

// Registry maps result types to their default pools.
type Registry struct {
	pools    sync.Map // reflect.Type -> *Pool[T]
	config   *control.PoolConfig
	counters *control.Counters
}

// NewRegistry creates a registry. Nil arguments fall back to a fresh
// config and the process-wide counters.
func NewRegistry(cfg *control.PoolConfig, counters *control.Counters) *Registry {
	if cfg == nil {
		cfg = control.NewPoolConfig()
	}
	if counters == nil {
		counters = control.Default()
	}
	return &Registry{config: cfg, counters: counters}
}

// PoolFor returns the registry's pool for type T, creating it on first
// use with the configured capacity.
func PoolFor[T any](r *Registry) *Pool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := r.pools.Load(key); ok {
		return v.(*Pool[T])
	}
	p := NewPool[T](r.config.Capacity(key.String()), r.counters)
	actual, _ := r.pools.LoadOrStore(key, p)
	return actual.(*Pool[T])
}

// New rents a handle from the registry's pool for type T.
func New[T any](r *Registry) Handle[T] {
	return PoolFor[T](r).New()
}
