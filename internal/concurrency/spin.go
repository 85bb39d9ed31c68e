// File: internal/concurrency/spin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded spin-wait for the narrow window where a producer has claimed a
// completion slot but not yet published the payload. The window spans a
// handful of plain stores, so the wait is expected to resolve within a
// few iterations.

package concurrency

import "runtime"

// spinYieldThreshold is the number of busy iterations before each wait
// starts yielding the processor.
const spinYieldThreshold = 8

// SpinUntil busy-waits until cond reports true, yielding the processor
// after the first few iterations. Returns the number of iterations spent,
// zero when cond was already true.
func SpinUntil(cond func() bool) int {
	for i := 0; ; i++ {
		if cond() {
			return i
		}
		if i >= spinYieldThreshold {
			runtime.Gosched()
		}
	}
}
