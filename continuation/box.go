// File: continuation/box.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-resume continuation box, one pool per result shape.

package continuation

import (
	"github.com/momentics/hioload-futures/api"
)

// Box holds a suspended computation's resumption data for results of
// shape T: the callback, the scheduler that decides where the callback
// runs, and the payload moved in at signal time.
//
// Boxes are rented from a Pool, armed once, signaled once, and returned
// to the pool automatically. A zero Box is not usable; always rent.
type Box[T any] struct {
	fn    func(api.Result[T])
	sched api.Scheduler
	res   api.Result[T]
	pool  *Pool[T]
}

// Arm moves the resumption callback and scheduling strategy into the box.
// A nil scheduler means inline resumption on the signaling call stack.
func (b *Box[T]) Arm(fn func(api.Result[T]), sched api.Scheduler) {
	b.fn = fn
	b.sched = sched
}

// Signal delivers the result and triggers the resumption exactly once.
// Invoked by the producer side when the awaited state completes. If the
// scheduler rejects the task the resumption runs inline so it is never
// lost; the failure then surfaces through the resumed computation's
// observer, not the signaling producer.
func (b *Box[T]) Signal(res api.Result[T]) {
	b.res = res
	sched := b.sched
	if sched == nil {
		b.Run()
		return
	}
	if err := sched.Schedule(b); err != nil {
		b.Run()
	}
}

// Run implements api.Runnable: it releases the box back to its pool and
// then invokes the callback with the delivered payload. Release happens
// first so a panicking callback cannot leak pooled capacity.
func (b *Box[T]) Run() {
	fn := b.fn
	res := b.res
	b.release()
	fn(res)
}

// Discard returns the box to its pool without running the callback, for
// callers whose registration lost to a stale-token check.
func (b *Box[T]) Discard() {
	b.release()
}

func (b *Box[T]) release() {
	pool := b.pool
	b.fn = nil
	b.sched = nil
	b.res = api.Result[T]{}
	if pool != nil {
		pool.put(b)
	}
}

var _ api.Runnable = (*Box[any])(nil)
