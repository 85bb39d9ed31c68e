// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object pooling for hioload-futures.
// Implements bounded per-type free-lists with optional reset hooks, a
// sync.Pool wrapper for unbounded shapes, a type-indexed registry, and a
// value-conveyance boxer that passes value payloads through opaque `any`
// parameters without per-call boxing.
// Capacity is always a soft cap: exhaustion degrades to ordinary
// allocation and never errors.
package pool
