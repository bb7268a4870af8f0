//go:build arm64 && !purego

package vecmath

import "github.com/cwbudde/algo-dispatch/internal/cpu"

const (
	enabled  = true
	level    = cpu.SIMDNEON
	priority = 15
)
