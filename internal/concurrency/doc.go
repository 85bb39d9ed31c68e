// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free and low-latency execution primitives backing the public
// packages: a bounded MPMC queue used as pool free-list storage, a
// worker-pool executor for posted resumptions with optional CPU pinning,
// and the bounded spin-wait used on the claim/complete race.
package concurrency
