// Package fft provides an FFT-based xcorr variant backed by
// github.com/cwbudde/algo-fft.
//
// Rows are zero-padded to a power of two of at least 2n-1 so the linear
// correlation does not alias, and the circular result is folded back from the
// positive and negative lags. float32 inputs are transformed in float64.
package fft
