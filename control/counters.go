// File: control/counters.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide counters tracking allocation-avoidance effectiveness.
// Informational only: no correctness role, never consulted on hot paths.

package control

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-futures/api"
)

// Counters aggregates allocation and fallback statistics. Components hold
// an explicit *Counters reference rather than reaching for hidden globals;
// Default returns the process-wide instance for convenience wiring.
type Counters struct {
	sourceAllocs   atomic.Uint64
	boxAllocs      atomic.Uint64
	valueBoxAllocs atomic.Uint64
	poolHits       atomic.Uint64
	poolMisses     atomic.Uint64
	spinWaits      atomic.Uint64
}

var (
	defaultOnce     sync.Once
	defaultCounters *Counters
)

// Default returns the process-wide Counters instance.
func Default() *Counters {
	defaultOnce.Do(func() {
		defaultCounters = &Counters{}
	})
	return defaultCounters
}

// IncSourceAlloc records a fresh completion-state allocation.
func (c *Counters) IncSourceAlloc() { c.sourceAllocs.Add(1) }

// IncBoxAlloc records a fresh continuation-box allocation.
func (c *Counters) IncBoxAlloc() { c.boxAllocs.Add(1) }

// IncValueBoxAlloc records a fresh value-box allocation.
func (c *Counters) IncValueBoxAlloc() { c.valueBoxAllocs.Add(1) }

// IncPoolHit records a rent satisfied from a free-list.
func (c *Counters) IncPoolHit() { c.poolHits.Add(1) }

// IncPoolMiss records a rent that fell back to ordinary allocation.
func (c *Counters) IncPoolMiss() { c.poolMisses.Add(1) }

// AddSpinWaits records iterations spent in the claim/complete spin-wait.
func (c *Counters) AddSpinWaits(n int) {
	if n > 0 {
		c.spinWaits.Add(uint64(n))
	}
}

// Snapshot returns a point-in-time copy of all counters.
func (c *Counters) Snapshot() api.CounterSnapshot {
	return api.CounterSnapshot{
		SourceAllocs:   c.sourceAllocs.Load(),
		BoxAllocs:      c.boxAllocs.Load(),
		ValueBoxAllocs: c.valueBoxAllocs.Load(),
		PoolHits:       c.poolHits.Load(),
		PoolMisses:     c.poolMisses.Load(),
		SpinWaits:      c.spinWaits.Load(),
	}
}
