//go:build !linux

// File: internal/concurrency/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub affinity implementation for platforms without sched_setaffinity.

package concurrency

// PinCurrentThread is unsupported on this platform.
func PinCurrentThread(slot int) error {
	return ErrAffinityNotSupported
}

// UnpinCurrentThread is a no-op on this platform.
func UnpinCurrentThread() error {
	return nil
}
