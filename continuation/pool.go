// File: continuation/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-shape box pools. Keying pools by the result shape T avoids
// cross-shape reuse bugs: a box only ever carries payloads of one type.

package continuation

import (
	"github.com/momentics/hioload-futures/control"
	"github.com/momentics/hioload-futures/pool"
)

// Pool rents continuation boxes for results of shape T.
type Pool[T any] struct {
	inner    *pool.SyncPool[*Box[T]]
	counters *control.Counters
}

// NewPool creates a box pool reporting to the given counters.
// Nil counters fall back to the process-wide set.
func NewPool[T any](counters *control.Counters) *Pool[T] {
	if counters == nil {
		counters = control.Default()
	}
	p := &Pool[T]{counters: counters}
	p.inner = pool.NewSyncPool(func() *Box[T] {
		counters.IncBoxAlloc()
		return &Box[T]{pool: p}
	})
	return p
}

// Rent obtains a box sized for shape T. The box must be armed before the
// state it is registered on can complete.
func (p *Pool[T]) Rent() *Box[T] {
	b := p.inner.Get()
	b.pool = p
	return b
}

func (p *Pool[T]) put(b *Box[T]) {
	p.inner.Put(b)
}
