package fft

import (
	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/kernel"
)

// Variant is the name the FFT kernels register under.
const Variant = "fft"

// init registers the FFT xcorr variant.
//
// Priority: 20 (O(n log n) per row beats every direct variant)
func init() {
	kernel.Global.MustRegister(kernel.Entry{
		Name:      "xcorr",
		Variant:   Variant,
		SIMDLevel: cpu.SIMDNone,
		Priority:  20,
		F32I32:    XCorr[float32, int32],
		F32I64:    XCorr[float32, int64],
		F64I32:    XCorr[float64, int32],
		F64I64:    XCorr[float64, int64],
	})
}
