//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Advanced SIMD is mandatory on ARMv8 but still read from the auxv bits.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
