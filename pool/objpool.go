// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded and unbounded generic object pools.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/control"
)

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

// Get returns an instance, allocating via the creator when empty.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns an instance for reuse.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ api.ObjectPool[any] = (*SyncPool[any])(nil)

// Typed is a bounded free-list for a single type. Rent never allocates;
// Put discards when the soft capacity cap is reached. The optional reset
// hook runs before an object re-enters the free-list and must leave it
// indistinguishable from a freshly constructed one.
//
// The free-list does no reference tracking: callers must not Put an
// object that is still in use elsewhere.
type Typed[T any] struct {
	mu       sync.Mutex
	free     *queue.Queue
	capacity int
	reset    func(T)
	creator  func() T
	counters *control.Counters

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewTyped creates a bounded pool. creator may be nil, in which case Get
// degrades to TryGet plus zero-value allocation of T via new(T) semantics
// only for pointerless shapes; pools for pointer types should always pass
// a creator. reset may be nil.
func NewTyped[T any](capacity int, creator func() T, reset func(T)) *Typed[T] {
	if capacity <= 0 {
		capacity = control.DefaultPoolCapacity
	}
	return &Typed[T]{
		free:     queue.New(),
		capacity: capacity,
		reset:    reset,
		creator:  creator,
		counters: control.Default(),
	}
}

// WithCounters redirects diagnostics to an explicit counter set.
func (p *Typed[T]) WithCounters(c *control.Counters) *Typed[T] {
	if c != nil {
		p.counters = c
	}
	return p
}

// TryGet pops a free instance; ok is false when the free-list is empty.
// Never allocates.
func (p *Typed[T]) TryGet() (T, bool) {
	p.mu.Lock()
	if p.free.Length() == 0 {
		p.mu.Unlock()
		var zero T
		return zero, false
	}
	obj := p.free.Remove().(T)
	p.mu.Unlock()
	p.counters.IncPoolHit()
	return obj, true
}

// Get returns a pooled instance, falling back to the creator on miss.
func (p *Typed[T]) Get() T {
	if obj, ok := p.TryGet(); ok {
		return obj
	}
	p.counters.IncPoolMiss()
	p.totalAlloc.Add(1)
	if p.creator != nil {
		return p.creator()
	}
	var zero T
	return zero
}

// Put returns obj to the free-list after running the reset hook. When the
// free-list is at capacity the object is discarded for normal reclamation.
func (p *Typed[T]) Put(obj T) {
	if p.reset != nil {
		p.reset(obj)
	}
	p.mu.Lock()
	if p.free.Length() >= p.capacity {
		p.mu.Unlock()
		return
	}
	p.free.Add(obj)
	p.mu.Unlock()
	p.totalFree.Add(1)
}

// Len returns the current free-list length.
func (p *Typed[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}

// Stats reports pool usage.
func (p *Typed[T]) Stats() api.PoolStats {
	alloc := p.totalAlloc.Load()
	free := p.totalFree.Load()
	return api.PoolStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
		Capacity:   p.capacity,
	}
}

var _ api.TryPool[any] = (*Typed[any])(nil)
var _ api.ObjectPool[any] = (*Typed[any])(nil)
