// File: pool/valuebox.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Value-conveyance boxing: carries a value-typed payload through an API
// that expects an opaque reference parameter, reusing a pooled box
// instead of allocating a fresh one per call.

package pool

import (
	"github.com/momentics/hioload-futures/control"
)

// boxed is the reusable container behind the opaque handle.
type boxed[T any] struct {
	value T
}

// ValueBoxer rents reusable boxes for values of type T. Box and Unbox
// form a strict pair: every handle produced by Box must be passed to
// Unbox exactly once, which releases the box for the next Box call.
type ValueBoxer[T any] struct {
	pool     *Typed[*boxed[T]]
	counters *control.Counters
}

// NewValueBoxer creates a boxer with the given free-list capacity.
func NewValueBoxer[T any](capacity int) *ValueBoxer[T] {
	b := &ValueBoxer[T]{counters: control.Default()}
	b.pool = NewTyped(capacity, func() *boxed[T] {
		b.counters.IncValueBoxAlloc()
		return new(boxed[T])
	}, nil)
	return b
}

// WithCounters redirects diagnostics to an explicit counter set.
func (b *ValueBoxer[T]) WithCounters(c *control.Counters) *ValueBoxer[T] {
	if c != nil {
		b.counters = c
		b.pool.WithCounters(c)
	}
	return b
}

// Box writes value into a rented box and returns the opaque handle.
func (b *ValueBoxer[T]) Box(value T) any {
	bx := b.pool.Get()
	bx.value = value
	return bx
}

// Unbox reads the value out of a handle produced by Box and returns the
// box to the pool. The second result is false when the handle did not
// originate from this boxer's shape.
func (b *ValueBoxer[T]) Unbox(handle any) (T, bool) {
	bx, ok := handle.(*boxed[T])
	if !ok {
		var zero T
		return zero, false
	}
	value := bx.value
	var zero T
	bx.value = zero // drop payload reference before the box is reused
	b.pool.Put(bx)
	return value, true
}
