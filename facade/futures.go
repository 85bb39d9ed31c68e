// File: facade/futures.go
// Unified facade layer for hioload-futures.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Aggregates the library's components behind a single struct: the
// type-indexed completion-source registry, the generic pool registry and
// value boxers, the posted-resumption executor, pool configuration, and
// diagnostics. Generic helpers cover the common flows: rent a handle,
// run a producer asynchronously, await a result, box a value payload.

package facade

import (
	"log"
	"sync"

	"github.com/momentics/hioload-futures/adapters"
	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/completion"
	"github.com/momentics/hioload-futures/control"
	"github.com/momentics/hioload-futures/pool"
)

// Config holds parameters immutable per run.
type Config struct {
	// Workers is the posted-resumption worker count; NumCPU when <= 0.
	Workers int
	// PinWorkers binds worker threads to CPUs on supported platforms.
	PinWorkers bool
	// PoolConfig overrides per-type free-list capacities; fresh when nil.
	PoolConfig *control.PoolConfig
	// Counters receives diagnostics; the process-wide set when nil.
	Counters *control.Counters
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{}
}

// Futures is the aggregation root.
type Futures struct {
	sources  *completion.Registry
	pools    *pool.Registry
	sched    *adapters.ExecutorScheduler
	counters *control.Counters
	config   *control.PoolConfig
	metrics  *control.MetricsRegistry
	debug    *adapters.DebugAdapter
}

// New assembles a Futures instance from cfg.
func New(cfg Config) *Futures {
	counters := cfg.Counters
	if counters == nil {
		counters = control.Default()
	}
	pc := cfg.PoolConfig
	if pc == nil {
		pc = control.NewPoolConfig()
	}
	f := &Futures{
		sources:  completion.NewRegistry(pc, counters),
		pools:    pool.NewRegistry(pc, counters),
		sched:    adapters.NewExecutorScheduler(cfg.Workers, cfg.PinWorkers),
		counters: counters,
		config:   pc,
		metrics:  control.NewMetricsRegistry(),
	}
	f.debug = adapters.NewDebugAdapter(control.NewDebugProbes(), counters)
	f.debug.RegisterProbe("futures.workers", func() any { return f.sched.NumWorkers() })
	return f
}

var (
	defaultOnce    sync.Once
	defaultFutures *Futures
)

// Default returns the process-wide Futures instance so all components
// share one executor and one set of pools, built on first use with
// DefaultConfig.
func Default() *Futures {
	defaultOnce.Do(func() {
		defaultFutures = New(DefaultConfig())
	})
	return defaultFutures
}

// Scheduler returns the posted-resumption scheduler.
func (f *Futures) Scheduler() api.Scheduler {
	return f.sched
}

// PoolConfig returns the capacity configuration store.
func (f *Futures) PoolConfig() *control.PoolConfig {
	return f.config
}

// Counters returns a point-in-time diagnostics snapshot.
func (f *Futures) Counters() api.CounterSnapshot {
	return f.counters.Snapshot()
}

// Metrics refreshes and returns the metrics registry.
func (f *Futures) Metrics() *control.MetricsRegistry {
	f.metrics.PublishCounters(f.counters)
	return f.metrics
}

// Debug returns the introspection surface.
func (f *Futures) Debug() api.Debug {
	return f.debug
}

// Close shuts down the executor. Pools need no teardown beyond process
// exit.
func (f *Futures) Close() {
	f.sched.Close()
}

// NewHandle rents a completion handle for type T from f's registry.
func NewHandle[T any](f *Futures) completion.Handle[T] {
	return completion.New[T](f.sources)
}

// Async runs fn on the executor and completes the returned handle with
// its outcome. The producing side is fn; the caller is the consumer.
func Async[T any](f *Futures, fn func() (T, error)) completion.Handle[T] {
	h := NewHandle[T](f)
	task := api.RunnableFunc(func() {
		v, err := fn()
		if err != nil {
			h.TrySetError(err)
		} else {
			h.TrySetValue(v)
		}
	})
	if err := f.sched.Schedule(task); err != nil {
		log.Printf("hioload-futures: scheduler rejected task, running inline: %v", err)
		task.Run()
	}
	return h
}

// Await blocks until h completes and consumes its payload. Interop
// helper for call sites that cannot suspend via OnComplete; the
// single-consume contract still applies.
func Await[T any](h completion.Handle[T]) (T, error) {
	if res, ok := h.TryConsume(); ok {
		return res.Unpack()
	}
	ch := make(chan api.Result[T], 1)
	if !h.OnComplete(func(r api.Result[T]) { ch <- r }, nil) {
		// Lost the registration: either completed in the gap or stale.
		if res, ok := h.TryConsume(); ok {
			return res.Unpack()
		}
		var zero T
		return zero, api.ErrStaleHandle
	}
	res := <-ch
	return res.Unpack()
}

// Chan adapts a handle to a buffered channel that receives the outcome
// once. The handle is consumed by the adapter.
func Chan[T any](h completion.Handle[T]) <-chan api.Result[T] {
	ch := make(chan api.Result[T], 1)
	if res, ok := h.TryConsume(); ok {
		ch <- res
		return ch
	}
	if !h.OnComplete(func(r api.Result[T]) { ch <- r }, nil) {
		if res, ok := h.TryConsume(); ok {
			ch <- res
		} else {
			ch <- api.Fail[T](api.ErrStaleHandle)
		}
	}
	return ch
}

// BoxValue conveys a value payload through an opaque any parameter using
// f's pooled boxer for T.
func BoxValue[T any](f *Futures, v T) any {
	return pool.BoxerFor[T](f.pools).Box(v)
}

// UnboxValue reads back a payload boxed by BoxValue and releases its box.
func UnboxValue[T any](f *Futures, handle any) (T, bool) {
	return pool.BoxerFor[T](f.pools).Unbox(handle)
}
