// File: internal/concurrency/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches resumptions across worker goroutines, using
// lock-free local queues and a global queue fallback. Workers confirm
// termination before removal so dynamic resizing is safe.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-futures/api"
)

const localQueueCapacity = 1024

// Executor manages a pool of worker goroutines running api.Runnable tasks.
type Executor struct {
	globalQueue   chan api.Runnable
	localQueues   []*LockFreeQueue[api.Runnable]
	workers       []*worker
	closeCh       chan struct{}
	closed        atomic.Bool
	resizeRequest chan int
	next          atomic.Uint64
	mu            sync.Mutex
	wg            sync.WaitGroup
}

// NewExecutor creates an Executor with the given number of workers.
// pinWorkers requests that each worker goroutine be bound to a CPU.
func NewExecutor(numWorkers int, pinWorkers bool) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		globalQueue:   make(chan api.Runnable, numWorkers*4),
		closeCh:       make(chan struct{}),
		resizeRequest: make(chan int),
	}
	e.localQueues = make([]*LockFreeQueue[api.Runnable], numWorkers)
	e.workers = make([]*worker, numWorkers)
	for i := 0; i < numWorkers; i++ {
		e.localQueues[i] = NewLockFreeQueue[api.Runnable](localQueueCapacity)
	}
	for i := 0; i < numWorkers; i++ {
		w := newWorker(i, e, e.localQueues[i], pinWorkers)
		e.workers[i] = w
		e.wg.Add(1)
		go w.run(&e.wg)
	}
	go e.manageResizes(pinWorkers)
	return e
}

// Schedule implements api.Scheduler.
func (e *Executor) Schedule(task api.Runnable) error {
	return e.Submit(task)
}

// Submit enqueues a task. Returns an error if closed or saturated.
func (e *Executor) Submit(task api.Runnable) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	e.mu.Lock()
	n := len(e.localQueues)
	var q *LockFreeQueue[api.Runnable]
	if n > 0 {
		q = e.localQueues[e.next.Add(1)%uint64(n)]
	}
	e.mu.Unlock()
	if q != nil && q.Enqueue(task) {
		return nil
	}
	select {
	case e.globalQueue <- task:
		return nil
	case <-e.closeCh:
		return ErrExecutorClosed
	default:
		return ErrQueueFull
	}
}

// Resize dynamically scales the worker pool.
func (e *Executor) Resize(newCount int) {
	if e.closed.Load() {
		return
	}
	e.resizeRequest <- newCount
}

// manageResizes grows or shrinks the worker set, waiting for removed
// workers to confirm exit before truncating the slices.
func (e *Executor) manageResizes(pinWorkers bool) {
	for newCount := range e.resizeRequest {
		e.mu.Lock()
		if newCount <= 0 {
			newCount = 1
		}
		current := len(e.workers)
		if newCount > current {
			for i := current; i < newCount; i++ {
				q := NewLockFreeQueue[api.Runnable](localQueueCapacity)
				e.localQueues = append(e.localQueues, q)
				w := newWorker(i, e, q, pinWorkers)
				e.workers = append(e.workers, w)
				e.wg.Add(1)
				go w.run(&e.wg)
			}
		} else if newCount < current {
			for i := newCount; i < current; i++ {
				close(e.workers[i].stopCh)
			}
			for i := newCount; i < current; i++ {
				<-e.workers[i].stoppedCh
			}
			e.workers = e.workers[:newCount]
			e.localQueues = e.localQueues[:newCount]
		}
		e.mu.Unlock()
	}
}

// Close shuts down the executor, waiting for workers to finish.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.closeCh)
		close(e.resizeRequest)
		e.mu.Lock()
		for _, w := range e.workers {
			close(w.stopCh)
		}
		e.mu.Unlock()
		e.wg.Wait()
	}
}

// NumWorkers returns the active worker count.
func (e *Executor) NumWorkers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.workers)
}

var _ api.Scheduler = (*Executor)(nil)

// worker drains its local queue, falling back to the global queue.
type worker struct {
	id         int
	executor   *Executor
	localQueue *LockFreeQueue[api.Runnable]
	pin        bool
	stopCh     chan struct{}
	stoppedCh  chan struct{}
}

func newWorker(id int, e *Executor, q *LockFreeQueue[api.Runnable], pin bool) *worker {
	return &worker{
		id:         id,
		executor:   e,
		localQueue: q,
		pin:        pin,
		stopCh:     make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

func (w *worker) run(wg *sync.WaitGroup) {
	defer func() {
		wg.Done()
		close(w.stoppedCh) // signal full exit before removal from the pool
	}()
	if w.pin {
		if err := PinCurrentThread(w.id); err == nil {
			defer UnpinCurrentThread()
		}
	}
	idle := 0
	for {
		select {
		case <-w.stopCh:
			return
		default:
			if task, ok := w.localQueue.Dequeue(); ok {
				w.safeExecute(task)
				idle = 0
				continue
			}
			select {
			case task := <-w.executor.globalQueue:
				w.safeExecute(task)
				idle = 0
			case <-w.stopCh:
				return
			default:
				idle++
				if idle > spinYieldThreshold {
					runtime.Gosched()
				}
			}
		}
	}
}

// safeExecute isolates task panics so one failed resumption cannot take
// down a worker.
func (w *worker) safeExecute(task api.Runnable) {
	defer func() { _ = recover() }()
	task.Run()
}
