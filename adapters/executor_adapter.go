// File: adapters/executor_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public adapter over the internal worker-pool executor. Used as the
// posted-resumption scheduler: continuation boxes signaled by a producer
// are resumed on executor workers instead of the producer's call stack.

package adapters

import (
	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/internal/concurrency"
)

// ExecutorScheduler posts resumptions to a pool of worker goroutines.
type ExecutorScheduler struct {
	exec *concurrency.Executor
}

// NewExecutorScheduler starts numWorkers workers (NumCPU when <= 0).
// pinWorkers binds each worker thread to a CPU on supported platforms.
func NewExecutorScheduler(numWorkers int, pinWorkers bool) *ExecutorScheduler {
	return &ExecutorScheduler{exec: concurrency.NewExecutor(numWorkers, pinWorkers)}
}

// Schedule implements api.Scheduler.
func (s *ExecutorScheduler) Schedule(task api.Runnable) error {
	return s.exec.Schedule(task)
}

// Resize adjusts the worker count at runtime.
func (s *ExecutorScheduler) Resize(newCount int) {
	s.exec.Resize(newCount)
}

// NumWorkers returns the active worker count.
func (s *ExecutorScheduler) NumWorkers() int {
	return s.exec.NumWorkers()
}

// Close shuts down the workers, waiting for in-flight resumptions.
func (s *ExecutorScheduler) Close() {
	s.exec.Close()
}

var _ api.Scheduler = (*ExecutorScheduler)(nil)
