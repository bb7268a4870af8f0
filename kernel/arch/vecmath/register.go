package vecmath

import (
	"github.com/cwbudde/algo-dispatch/kernel"
)

// Variant is the name the vecmath kernels register under.
const Variant = "vecmath"

// init registers the float64 variants when the architecture has a SIMD
// baseline algo-vecmath accelerates.
//
// Priority: 10 on amd64 (SSE2 baseline), 15 on arm64 (NEON)
func init() {
	if !enabled {
		return
	}

	kernel.Global.MustRegister(kernel.Entry{
		Name:        "sum",
		Variant:     Variant,
		SIMDLevel:   level,
		Priority:    priority,
		OutputShape: kernel.Scalar,
		F64I32:      Sum[int32],
		F64I64:      Sum[int64],
	})

	kernel.Global.MustRegister(kernel.Entry{
		Name:      "add",
		Variant:   Variant,
		SIMDLevel: level,
		Priority:  priority,
		F64I32:    Add[int32],
		F64I64:    Add[int64],
	})

	kernel.Global.MustRegister(kernel.Entry{
		Name:      "xcorr",
		Variant:   Variant,
		SIMDLevel: level,
		Priority:  priority,
		F64I32:    XCorr[int32],
		F64I64:    XCorr[int64],
	})
}
