// Package continuation
// Author: momentics <momentics@gmail.com>
//
// Pooled continuation boxes for hioload-futures.
//
// A Box captures a suspended computation's resumption callback plus the
// scheduling strategy used to run it. Without the box, registering a
// callback against an incomplete operation costs a closure allocation per
// await; pooling boxes by result shape turns that into a rent/return.
//
// A box resumes its stored computation exactly once and is released back
// to its pool before the callback runs, so a panicking callback never
// leaks pool capacity. Exactly-once discipline is enforced upstream by
// the completion source's generation token, not by the box itself.
package continuation
