//go:build amd64 && !purego

package vecmath

import "github.com/cwbudde/algo-dispatch/internal/cpu"

const (
	enabled  = true
	level    = cpu.SIMDSSE2
	priority = 10
)
