//go:build (!amd64 && !arm64) || purego

package vecmath

import "github.com/cwbudde/algo-dispatch/internal/cpu"

const (
	enabled  = false
	level    = cpu.SIMDNone
	priority = 0
)
