// File: api/scheduler.go
// Author: momentics <momentics@gmail.com>
//
// Scheduler contract for resuming suspended computations.
// Implementations decide where the resumption runs: inline on the
// signaling call stack, or posted to an execution context.

package api

// Runnable is a resumable unit of work. Using an interface instead of a
// bare func avoids a closure allocation when posting pooled boxes.
type Runnable interface {
	Run()
}

// Scheduler dispatches resumptions.
type Scheduler interface {
	// Schedule queues task for execution. An error means the task was not
	// accepted (e.g. the backing executor is closed); callers fall back to
	// inline execution so a resumption is never lost.
	Schedule(task Runnable) error
}

// RunnableFunc adapts a plain func to Runnable.
type RunnableFunc func()

// Run implements Runnable.
func (f RunnableFunc) Run() { f() }
