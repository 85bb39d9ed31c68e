// Package api
// Author: momentics <momentics@gmail.com>
//
// Pure contracts and value types for hioload-futures.
// Defines result and error shapes, pooling interfaces, the scheduler
// contract used to resume suspended computations, diagnostics snapshot
// types, and debug introspection hooks.
//
// The api package has no dependencies on concrete implementations; all
// other packages in the library implement or consume these contracts.
package api
