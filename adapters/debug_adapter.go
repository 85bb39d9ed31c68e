// File: adapters/debug_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Adapts control probes and counters to the api.Debug contract.

package adapters

import (
	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/control"
)

// DebugAdapter merges probe output and the counter snapshot into one
// introspection surface.
type DebugAdapter struct {
	probes   *control.DebugProbes
	counters *control.Counters
}

// NewDebugAdapter wires probes and counters together; platform probes
// are registered automatically.
func NewDebugAdapter(probes *control.DebugProbes, counters *control.Counters) *DebugAdapter {
	if probes == nil {
		probes = control.NewDebugProbes()
	}
	if counters == nil {
		counters = control.Default()
	}
	control.RegisterPlatformProbes(probes)
	return &DebugAdapter{probes: probes, counters: counters}
}

// DumpState implements api.Debug.
func (d *DebugAdapter) DumpState() map[string]any {
	out := d.probes.DumpState()
	out["futures.counters"] = d.counters.Snapshot()
	return out
}

// RegisterProbe implements api.Debug.
func (d *DebugAdapter) RegisterProbe(name string, fn func() any) {
	d.probes.RegisterProbe(name, fn)
}

var _ api.Debug = (*DebugAdapter)(nil)
