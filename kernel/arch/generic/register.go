package generic

import (
	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/kernel"
)

// Variant is the name the generic kernels register under.
const Variant = "generic"

// init registers the reference kernels with the global registry.
//
// Priority: 0 (used only when no faster variant is available)
func init() {
	kernel.Global.MustRegister(kernel.Entry{
		Name:        "sum",
		Variant:     Variant,
		SIMDLevel:   cpu.SIMDNone,
		OutputShape: kernel.Scalar,
		F32I32:      Sum[float32, int32],
		F32I64:      Sum[float32, int64],
		F64I32:      Sum[float64, int32],
		F64I64:      Sum[float64, int64],
	})

	kernel.Global.MustRegister(kernel.Entry{
		Name:      "add",
		Variant:   Variant,
		SIMDLevel: cpu.SIMDNone,
		F32I32:    Add[float32, int32],
		F32I64:    Add[float32, int64],
		F64I32:    Add[float64, int32],
		F64I64:    Add[float64, int64],
	})

	kernel.Global.MustRegister(kernel.Entry{
		Name:      "max",
		Variant:   Variant,
		SIMDLevel: cpu.SIMDNone,
		F32I32:    Max[float32, int32],
		F32I64:    Max[float32, int64],
		F64I32:    Max[float64, int32],
		F64I64:    Max[float64, int64],
	})

	kernel.Global.MustRegister(kernel.Entry{
		Name:      "xcorr",
		Variant:   Variant,
		SIMDLevel: cpu.SIMDNone,
		F32I32:    XCorr[float32, int32],
		F32I64:    XCorr[float32, int64],
		F64I32:    XCorr[float64, int32],
		F64I64:    XCorr[float64, int64],
	})
}
