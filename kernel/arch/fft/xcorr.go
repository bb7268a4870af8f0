package fft

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// XCorr computes x[r, k] = Σ_j X1[r, (j+k) mod n] · X2[r, j] along the last
// axis through IFFT(FFT(a) · conj(FFT(b))), and i = I1 + I2.
func XCorr[V ndarray.Float, I ndarray.Index](in kernel.Operands[V, I], out kernel.Results[V, I]) error {
	kernel.AddInto(in.I1, in.I2, out.I)

	if in.X1.Len() == 0 {
		return nil
	}
	n := in.Shape[len(in.Shape)-1]

	a, ra := kernel.Rows(in.X1)
	defer ra()
	b, rb := kernel.Rows(in.X2)
	defer rb()

	xs, commit := kernel.Writable(out.X)
	defer commit()

	if n < 2 {
		for k := range xs {
			xs[k] = a[k] * b[k]
		}
		return nil
	}

	c, err := newCorrelator(n)
	if err != nil {
		return err
	}
	for start := 0; start < len(xs); start += n {
		if err := correlateRow(c, xs[start:start+n], a[start:start+n], b[start:start+n]); err != nil {
			return err
		}
	}
	return nil
}

// correlator holds one plan and its work buffers, reused across rows.
type correlator struct {
	plan       *algofft.Plan[complex128]
	size       int
	aPad, bPad []complex128
	aFreq      []complex128
	bFreq      []complex128
	result     []complex128
}

func newCorrelator(n int) (*correlator, error) {
	size := nextPowerOf2(2*n - 1)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create FFT plan: %w", err)
	}
	return &correlator{
		plan:   plan,
		size:   size,
		aPad:   make([]complex128, size),
		bPad:   make([]complex128, size),
		aFreq:  make([]complex128, size),
		bFreq:  make([]complex128, size),
		result: make([]complex128, size),
	}, nil
}

func correlateRow[V ndarray.Float](c *correlator, dst, a, b []V) error {
	n := len(dst)
	for i := range c.aPad {
		if i < n {
			c.aPad[i] = complex(float64(a[i]), 0)
			c.bPad[i] = complex(float64(b[i]), 0)
			continue
		}
		c.aPad[i], c.bPad[i] = 0, 0
	}

	if err := c.plan.Forward(c.aFreq, c.aPad); err != nil {
		return fmt.Errorf("fft: forward FFT failed: %w", err)
	}
	if err := c.plan.Forward(c.bFreq, c.bPad); err != nil {
		return fmt.Errorf("fft: forward FFT failed: %w", err)
	}

	// A · conj(B), stored in aFreq.
	for i := range c.aFreq {
		bConj := complex(real(c.bFreq[i]), -imag(c.bFreq[i]))
		c.aFreq[i] *= bConj
	}

	if err := c.plan.Inverse(c.result, c.aFreq); err != nil {
		return fmt.Errorf("fft: inverse FFT failed: %w", err)
	}

	// Lag k sits at index k, lag k-n at index size-n+k.
	dst[0] = V(real(c.result[0]))
	for k := 1; k < n; k++ {
		dst[k] = V(real(c.result[k]) + real(c.result[c.size-n+k]))
	}
	return nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
