// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, pool configuration, and debug introspection layer for
// hioload-futures.
//
// Provides concurrent-safe state handling primitives including:
//   - Process-wide allocation-avoidance counters (advisory only)
//   - Per-type pool capacity configuration with hot-reload observers
//   - Metrics telemetry snapshots
//   - Debug hooks and probe registration
//
// Nothing in this package participates in completion control flow; all
// surfaces are read-mostly and safe for concurrent use.
package control
