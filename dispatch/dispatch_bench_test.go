package dispatch

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-dispatch/internal/testutil"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

func BenchmarkCompute(b *testing.B) {
	for _, name := range kernels {
		for _, layout := range layouts {
			b.Run(fmt.Sprintf("%s/%s", name, layout), func(b *testing.B) {
				q := testutil.Random(b, 1024, 64, ndarray.Float64, ndarray.Int64, layout, 1)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := Compute(q.X1, q.X2, q.I1, q.I2, WithKernel(name)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSumVariants(b *testing.B) {
	q := testutil.Random(b, 4096, 16, ndarray.Float64, ndarray.Int64, ndarray.RowMajor, 2)
	for _, opt := range []struct {
		name string
		opt  Option
	}{
		{"auto", nil},
		{"generic", WithGenericKernels()},
	} {
		b.Run(opt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Compute(q.X1, q.X2, q.I1, q.I2, opt.opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
