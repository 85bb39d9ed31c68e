// File: completion/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The caller-facing handle: a non-owning (state, token) value pair.
// Handles are cheap to copy, but consumption is single-use: once one copy
// consumes the payload the slot recycles and every other copy is stale.

package completion

import (
	"github.com/momentics/hioload-futures/api"
)

// Handle references a completion state at a specific generation. The
// zero Handle is invalid. All methods are safe on stale handles: they
// report false rather than crash.
type Handle[T any] struct {
	src   *source[T]
	token uint16
}

// Token returns the handle's generation token. Diagnostic only.
func (h Handle[T]) Token() uint16 {
	return h.token
}

// IsValid reports whether the handle still references its generation.
// Side-effect free.
func (h Handle[T]) IsValid() bool {
	return h.src != nil && stateToken(h.src.state.Load()) == h.token
}

// IsCompleted reports whether the generation completed and the payload
// is still waiting for its single consumer. Side-effect free.
func (h Handle[T]) IsCompleted() bool {
	if h.src == nil {
		return false
	}
	w := h.src.state.Load()
	return stateToken(w) == h.token && statePhase(w) == phaseCompleted
}

// TrySetValue completes the operation with a value. Returns true exactly
// once per generation; stale handles and repeat sets report false.
func (h Handle[T]) TrySetValue(v T) bool {
	if h.src == nil {
		return false
	}
	return h.src.trySet(h.token, api.Result[T]{Value: v})
}

// TrySetError completes the operation with an error payload. The error
// is delivered to the consumer as the operation's outcome.
func (h Handle[T]) TrySetError(err error) bool {
	if h.src == nil {
		return false
	}
	return h.src.trySet(h.token, api.Result[T]{Err: err})
}

// TrySetCanceled completes the operation with the cancellation outcome.
// Cancellation is a completion payload, not a separate channel; the same
// at-most-once-set contract applies.
func (h Handle[T]) TrySetCanceled() bool {
	return h.TrySetError(api.ErrCanceled)
}

// MustSetValue is the throwing variant of TrySetValue for producers that
// treat a lost set as a programming error. This is the only surface in
// the package that panics.
func (h Handle[T]) MustSetValue(v T) {
	if !h.TrySetValue(v) {
		panic(api.NewError(api.ErrCodeInvalidUse, "completion: set on completed or stale handle").
			WithContext("token", h.token))
	}
}

// MustSetError is the throwing variant of TrySetError.
func (h Handle[T]) MustSetError(err error) {
	if !h.TrySetError(err) {
		panic(api.NewError(api.ErrCodeInvalidUse, "completion: set on completed or stale handle").
			WithContext("token", h.token))
	}
}

// OnComplete registers fn to run once with the operation's outcome. A nil
// scheduler resumes inline on whichever side closes the race: the
// producer's set call, or this call when the operation already completed.
// Returns false on a stale handle or when a continuation is already
// registered; fn is then never called.
func (h Handle[T]) OnComplete(fn func(api.Result[T]), sched api.Scheduler) bool {
	if h.src == nil || fn == nil {
		return false
	}
	box := h.src.owner.boxes.Rent()
	box.Arm(fn, sched)
	if h.src.register(h.token, box) {
		return true
	}
	box.Discard()
	return false
}

// TryConsume takes the payload of a completed operation and recycles the
// slot. ok is false when the operation has not completed or the handle is
// stale (including "already consumed by another copy").
func (h Handle[T]) TryConsume() (api.Result[T], bool) {
	if h.src == nil {
		return api.Result[T]{}, false
	}
	return h.src.tryConsume(h.token)
}

// MustConsume is the throwing variant of TryConsume.
func (h Handle[T]) MustConsume() api.Result[T] {
	res, ok := h.TryConsume()
	if !ok {
		panic(api.NewError(api.ErrCodeInvalidUse, "completion: consume on pending or stale handle").
			WithContext("token", h.token))
	}
	return res
}
