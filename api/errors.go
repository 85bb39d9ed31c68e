// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-futures.
// Hot-path operations report failure as boolean no-ops; these errors exist
// for the Must* wrappers, the blocking facade helpers, and cancellation.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrCanceled is the payload of a completion that was canceled.
	// Cancellation is a completion outcome, not a separate channel.
	ErrCanceled = fmt.Errorf("operation canceled")

	// ErrStaleHandle indicates an operation against a recycled generation.
	ErrStaleHandle = fmt.Errorf("stale handle: generation recycled")

	// ErrAlreadyCompleted indicates a second set attempt on one generation.
	ErrAlreadyCompleted = fmt.Errorf("completion already set")

	// ErrNotCompleted indicates a consume attempt before completion.
	ErrNotCompleted = fmt.Errorf("completion not set")

	// ErrSchedulerClosed indicates the resumption scheduler rejected a task.
	ErrSchedulerClosed = fmt.Errorf("scheduler is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidUse
	ErrCodeStaleHandle
	ErrCodeAlreadyCompleted
	ErrCodeNotCompleted
	ErrCodeCanceled
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
