// File: api/result.go
// Author: momentics <momentics@gmail.com>
//
// Generic result and error propagation for single-shot completions.

package api

// Result wraps a completion payload or error. Exactly one of Value/Err
// is meaningful; Err != nil means the operation failed or was canceled.
type Result[T any] struct {
	Value T
	Err   error
}

// Of wraps a successful value.
func Of[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps an error outcome.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Canceled reports whether the result carries the cancellation outcome.
func (r Result[T]) Canceled() bool {
	return r.Err == ErrCanceled
}

// Unpack returns the payload in Go call-convention form.
func (r Result[T]) Unpack() (T, error) {
	return r.Value, r.Err
}
