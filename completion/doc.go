// Package completion
// Author: momentics <momentics@gmail.com>
//
// Recyclable, token-guarded completion states: the core of
// hioload-futures.
//
// A completion state represents a pending result that may be set exactly
// once. States are pooled and reused across unrelated logical operations;
// a 16-bit generation token distinguishes successive reuses of the same
// slot, so handles left over from a previous generation degrade to no-ops
// instead of corrupting the current owner's operation.
//
// Contract per generation: exactly one producer calls TrySetValue or
// TrySetError, and exactly one consumer calls OnComplete or TryConsume.
// The producer/consumer race is handled lock-free; multi-producer or
// multi-consumer use of one generation is out of contract (first writer
// wins, later writers observe false). Consumption is single-use: after a
// successful consume the slot recycles and every copy of the old handle
// is permanently invalid.
package completion
