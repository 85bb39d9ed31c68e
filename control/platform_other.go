//go:build !linux

// control/platform_other.go
// Author: momentics <momentics@gmail.com>
//
// Portable platform debug probe integrations.

package control

import "runtime"

// RegisterPlatformProbes sets portable debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
