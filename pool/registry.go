// File: pool/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Type-indexed pool registry: one bounded free-list per Go type, created
// lazily with the capacity configured in control.PoolConfig.

package pool

import (
	"reflect"
	"sync"

	"github.com/momentics/hioload-futures/control"
)

// Registry maps Go types to their Typed pools. Safe for concurrent use;
// pool creation is idempotent under races (LoadOrStore discipline).
type Registry struct {
	pools    sync.Map // reflect.Type -> *Typed[T]
	config   *control.PoolConfig
	counters *control.Counters
}

// NewRegistry creates a registry backed by the given configuration.
// Nil arguments fall back to fresh config and the default counters.
func NewRegistry(cfg *control.PoolConfig, counters *control.Counters) *Registry {
	if cfg == nil {
		cfg = control.NewPoolConfig()
	}
	if counters == nil {
		counters = control.Default()
	}
	return &Registry{config: cfg, counters: counters}
}

// Config exposes the backing pool configuration.
func (r *Registry) Config() *control.PoolConfig {
	return r.config
}

// TypeKey returns the configuration key used for type T.
func TypeKey[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// For returns the registry's pool for type T, creating it on first use
// with the configured capacity. creator/reset are only consulted when the
// pool does not exist yet; later callers share the first pool created.
func For[T any](r *Registry, creator func() T, reset func(T)) *Typed[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := r.pools.Load(key); ok {
		return v.(*Typed[T])
	}
	capacity := r.config.Capacity(key.String())
	p := NewTyped[T](capacity, creator, reset).WithCounters(r.counters)
	actual, _ := r.pools.LoadOrStore(key, p)
	return actual.(*Typed[T])
}

// BoxerFor returns the registry's value boxer for type T, creating it on
// first use. Boxer capacity is configured under "valuebox:" + TypeKey[T].
func BoxerFor[T any](r *Registry) *ValueBoxer[T] {
	key := reflect.TypeOf((*ValueBoxer[T])(nil))
	if v, ok := r.pools.Load(key); ok {
		return v.(*ValueBoxer[T])
	}
	capacity := r.config.Capacity("valuebox:" + TypeKey[T]())
	b := NewValueBoxer[T](capacity).WithCounters(r.counters)
	actual, _ := r.pools.LoadOrStore(key, b)
	return actual.(*ValueBoxer[T])
}
