package dispatch

// Importing the arch packages registers their kernels with kernel.Global.
import (
	_ "github.com/cwbudde/algo-dispatch/kernel/arch/fft"
	_ "github.com/cwbudde/algo-dispatch/kernel/arch/generic"
	_ "github.com/cwbudde/algo-dispatch/kernel/arch/vecmath"
)
