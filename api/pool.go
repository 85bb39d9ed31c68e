// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling contracts: reuse-first allocators for transient objects.

package api

// ObjectPool provides generic pooling of Go objects allocated transiently.
type ObjectPool[T any] interface {
	// Get returns an instance from the pool, allocating if empty.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}

// TryPool is a pool whose rent operation never allocates.
type TryPool[T any] interface {
	// TryGet pops a free instance; ok is false when the free-list is empty.
	TryGet() (obj T, ok bool)

	// Put returns an instance for reuse. Capacity is a soft cap: when the
	// free-list is full the instance is discarded for normal reclamation.
	Put(obj T)
}

// Resettable objects are wiped before re-entering a free-list so that a
// reused instance is indistinguishable from a freshly constructed one.
type Resettable interface {
	Reset()
}
