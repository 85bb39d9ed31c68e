// File: completion/source.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The pooled completion state. All transitions run on a single atomic
// state word (token + phase); the payload fields are plain because the
// CAS protocol orders every write against the read that observes it.

package completion

import (
	"sync/atomic"

	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/continuation"
	"github.com/momentics/hioload-futures/internal/concurrency"
)

// source is one recyclable completion slot. Exclusively owned by one
// in-flight operation per generation; the owner pool recycles it after
// the single reader has taken the payload.
type source[T any] struct {
	state atomic.Uint32 // token<<16 | phase
	value T
	err   error
	cont  *continuation.Box[T]
	owner *Pool[T]
}

// trySet attempts to complete the current generation with res.
// Returns true exactly once per generation; stale tokens and repeat
// attempts are no-ops returning false.
func (s *source[T]) trySet(token uint16, res api.Result[T]) bool {
	for {
		w := s.state.Load()
		if stateToken(w) != token {
			return false
		}
		switch statePhase(w) {
		case phasePending:
			if !s.state.CompareAndSwap(w, packState(token, phaseClaimed)) {
				continue
			}
			s.value = res.Value
			s.err = res.Err
			s.state.Store(packState(token, phaseCompleted))
			return true
		case phaseAttached:
			if !s.state.CompareAndSwap(w, packState(token, phaseClaimed)) {
				continue
			}
			// The consumer is suspended: move the payload into its box,
			// recycle the slot, then signal. The box carries the result,
			// so the slot never outlives the signal.
			box := s.cont
			s.cont = nil
			s.recycle(token)
			box.Signal(res)
			return true
		default:
			// claimed or completed: another set already won this generation
			return false
		}
	}
}

// register attaches a continuation box for the current generation. When
// the producer has already completed (or is completing) the generation,
// the box is signaled immediately with the payload.
func (s *source[T]) register(token uint16, box *continuation.Box[T]) bool {
	for {
		w := s.state.Load()
		if stateToken(w) != token {
			return false
		}
		switch statePhase(w) {
		case phasePending:
			s.cont = box
			if s.state.CompareAndSwap(w, packState(token, phaseAttached)) {
				return true
			}
			s.cont = nil // producer moved first; retry against the new phase
		case phaseClaimed:
			s.awaitPublish(token)
		case phaseCompleted:
			res := api.Result[T]{Value: s.value, Err: s.err}
			s.recycle(token)
			box.Signal(res)
			return true
		default:
			// attached: a continuation is already registered
			return false
		}
	}
}

// tryConsume takes the payload of a completed generation and recycles
// the slot. Not-yet-completed and stale generations report false.
func (s *source[T]) tryConsume(token uint16) (api.Result[T], bool) {
	for {
		w := s.state.Load()
		if stateToken(w) != token {
			return api.Result[T]{}, false
		}
		switch statePhase(w) {
		case phaseCompleted:
			res := api.Result[T]{Value: s.value, Err: s.err}
			s.recycle(token)
			return res, true
		case phaseClaimed:
			s.awaitPublish(token)
		default:
			return api.Result[T]{}, false
		}
	}
}

// awaitPublish spin-waits out the narrow window between a producer
// claiming the slot and publishing the payload. The wait spans a few
// plain stores on the producer side.
func (s *source[T]) awaitPublish(token uint16) {
	claimed := packState(token, phaseClaimed)
	spins := concurrency.SpinUntil(func() bool {
		return s.state.Load() != claimed
	})
	s.owner.counters.AddSpinWaits(spins)
}

// recycle zeroes the payload, advances the generation token, and returns
// the slot to its pool. Every handle holding the old token is invalid
// from the moment of the state store.
func (s *source[T]) recycle(token uint16) {
	var zero T
	s.value = zero
	s.err = nil
	s.cont = nil
	s.state.Store(packState(nextToken(token), phasePending))
	s.owner.put(s)
}
