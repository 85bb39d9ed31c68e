// File: continuation/inline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package continuation

import "github.com/momentics/hioload-futures/api"

// inlineScheduler runs resumptions directly on the signaling call stack.
type inlineScheduler struct{}

func (inlineScheduler) Schedule(task api.Runnable) error {
	task.Run()
	return nil
}

// Inline is the direct-call scheduler: zero queueing, zero allocation.
// The resumed computation runs before Signal returns to the producer.
var Inline api.Scheduler = inlineScheduler{}
