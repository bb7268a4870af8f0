// Command ndbench exercises the typed array dispatcher.
//
// Usage:
//
//	ndbench [--log-level debug] [--force-generic] <command> [flags]
//
// Commands:
//
//	demo     run the 2x2 scenarios for every observed tag
//	bench    time Compute on large C and F inputs
//	kernels  list registered kernel variants
//
// Examples:
//
//	ndbench demo --kernel add
//	ndbench bench --rows 1000000 --cols 10 --iterations 5
//	ndbench bench --kernel xcorr --rows 10000 --cols 256 --parallel 4
//	ALGODISPATCH_FORCE_GENERIC=1 ndbench kernels
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
