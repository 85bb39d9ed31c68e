// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Read-only diagnostics snapshot types. Advisory only: counters track
// allocation-avoidance effectiveness and never affect control flow.

package api

// CounterSnapshot is a point-in-time copy of the process-wide counters.
type CounterSnapshot struct {
	// SourceAllocs counts completion states allocated fresh (pool miss).
	SourceAllocs uint64
	// BoxAllocs counts continuation boxes allocated fresh.
	BoxAllocs uint64
	// ValueBoxAllocs counts value-conveyance boxes allocated fresh.
	ValueBoxAllocs uint64
	// PoolHits counts rents satisfied from a free-list.
	PoolHits uint64
	// PoolMisses counts rents that fell back to ordinary allocation.
	PoolMisses uint64
	// SpinWaits counts defensive spin-wait fallbacks on the
	// claim/complete race.
	SpinWaits uint64
}

// PoolStats reports per-pool usage.
type PoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	Capacity   int
}
