// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform facts that influence queue sizing.

package control

import (
	"runtime"

	"github.com/momentics/hioload-queue/internal/ring"
)

// RegisterPlatformProbes adds CPU count and cache line size probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.cache_line", func() any {
		return ring.CacheLineSize()
	})
}
