// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Adapters exposing internal implementations through the api contracts:
// the worker-pool executor as an api.Scheduler, and the control layer's
// probes and metrics as an api.Debug.
package adapters
