package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dispatch/dispatch"
	"github.com/cwbudde/algo-dispatch/internal/timing"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

type benchConfig struct {
	rows       int
	cols       int
	iterations int
	parallel   int
	kernel     string
	seed       int64
}

// benchRow is one line of the bench table.
type benchRow struct {
	value   ndarray.Kind
	layout  ndarray.Layout
	variant string
	timing  timing.Summary
	result  dispatch.Result
}

func newBenchCmd(a *app) *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time Compute on C and F inputs of float32 and float64 values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), a, cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.rows, "rows", 1_000_000, "rows of each input")
	cmd.Flags().IntVar(&cfg.cols, "cols", 10, "columns of each input")
	cmd.Flags().IntVar(&cfg.iterations, "iterations", 5, "timed calls per case")
	cmd.Flags().IntVar(&cfg.parallel, "parallel", 1, "concurrent calls per iteration")
	cmd.Flags().StringVar(&cfg.kernel, "kernel", dispatch.DefaultKernel, "kernel to run")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 1, "seed of the generated inputs")
	return cmd
}

func runBench(w io.Writer, a *app, cfg benchConfig) error {
	if cfg.rows < 0 || cfg.cols < 0 {
		return fmt.Errorf("negative shape %dx%d", cfg.rows, cfg.cols)
	}
	if cfg.iterations < 1 || cfg.parallel < 1 {
		return errors.New("--iterations and --parallel must be at least 1")
	}

	d := dispatch.New(append(a.options(), dispatch.WithKernel(cfg.kernel))...)
	shape := ndarray.Shape{cfg.rows, cfg.cols}
	n := shape.NumElements()

	a.logger.Info("generating inputs", "shape", shape.String(), "kernel", cfg.kernel)
	values := [2][]float64{noise(cfg.seed, n), noise(cfg.seed+1, n)}
	indices := [2][]int64{ramp(cfg.seed+2, n), ramp(cfg.seed+3, n)}

	var rows []benchRow
	for _, kind := range []ndarray.Kind{ndarray.Float64, ndarray.Float32} {
		for _, layout := range []ndarray.Layout{ndarray.RowMajor, ndarray.ColMajor} {
			args, err := benchInputs(shape, kind, layout, values, indices)
			if err != nil {
				return err
			}
			row, err := timeCase(d, args, cfg)
			if err != nil {
				return fmt.Errorf("%s %s: %w", kind, layout, err)
			}
			row.value, row.layout = kind, layout
			rows = append(rows, row)
			a.logger.Debug("bench case done", "kind", kind.String(), "layout", layout.String(), "mean", row.timing.Mean)
		}
	}

	renderBench(w, rows, n, cfg)
	return nil
}

func benchInputs(shape ndarray.Shape, kind ndarray.Kind, layout ndarray.Layout, values [2][]float64, indices [2][]int64) ([4]*ndarray.Array, error) {
	var out [4]*ndarray.Array
	for n := 0; n < 2; n++ {
		x, err := ndarray.FromSlice(values[n], shape, ndarray.RowMajor)
		if err != nil {
			return out, err
		}
		if out[n], err = ndarray.Convert(x, kind, layout); err != nil {
			return out, err
		}
		i, err := ndarray.FromSlice(indices[n], shape, ndarray.RowMajor)
		if err != nil {
			return out, err
		}
		if out[n+2], err = ndarray.Convert(i, ndarray.Int64, layout); err != nil {
			return out, err
		}
	}
	return out, nil
}

// timeCase runs cfg.iterations rounds of cfg.parallel concurrent calls and
// checks every call returns the first call's result.
func timeCase(d *dispatch.Dispatcher, args [4]*ndarray.Array, cfg benchConfig) (benchRow, error) {
	var (
		row benchRow
		rec timing.Recorder
	)

	for it := 0; it < cfg.iterations; it++ {
		results := make([]dispatch.Result, cfg.parallel)

		err := rec.Time(func() error {
			var g errgroup.Group
			for p := range results {
				g.Go(func() error {
					res, err := d.Compute(args[0], args[1], args[2], args[3])
					results[p] = res
					return err
				})
			}
			return g.Wait()
		})
		if err != nil {
			return row, err
		}

		if it == 0 {
			row.result = results[0]
			row.variant = results[0].Variant
		}
		for _, res := range results {
			if !identical(row.result, res) {
				return row, errors.New("concurrent calls disagree")
			}
		}
	}

	row.timing = rec.Result()
	return row, nil
}

func renderBench(w io.Writer, rows []benchRow, n int, cfg benchConfig) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"VALUES", "LAYOUT", "KERNEL", "VARIANT", "MEAN", "STDDEV", "MIN", "MELEM/S", "C==F"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for k, r := range rows {
		// Each call reads four arrays of n elements.
		rate := float64(4*n*cfg.parallel) / r.timing.Mean.Seconds() / 1e6

		match := "-"
		if r.layout == ndarray.ColMajor && k > 0 {
			match = fmt.Sprint(identical(rows[k-1].result, r.result))
		}

		table.Append([]string{
			r.value.String(),
			r.layout.String(),
			cfg.kernel,
			r.variant,
			r.timing.Mean.Round(time.Microsecond).String(),
			r.timing.StdDev.Round(time.Microsecond).String(),
			r.timing.Min.Round(time.Microsecond).String(),
			fmt.Sprintf("%.1f", rate),
			match,
		})
	}
	table.Render()
}

// identical reports bitwise equality of two results' logical contents.
func identical(a, b dispatch.Result) bool {
	return sameArray(a.Values, b.Values) && sameArray(a.Indices, b.Indices)
}

func sameArray(a, b *ndarray.Array) bool {
	if a.Kind() != b.Kind() || !a.Shape().Equal(b.Shape()) {
		return false
	}
	switch a.Kind() {
	case ndarray.Float32:
		x, _ := a.Float32s()
		y, _ := b.Float32s()
		for k := range x {
			if math.Float32bits(x[k]) != math.Float32bits(y[k]) {
				return false
			}
		}
		return true
	case ndarray.Float64:
		x, _ := a.Float64s()
		y, _ := b.Float64s()
		for k := range x {
			if math.Float64bits(x[k]) != math.Float64bits(y[k]) {
				return false
			}
		}
		return true
	case ndarray.Int32:
		x, _ := a.Int32s()
		y, _ := b.Int32s()
		return equalInts(x, y)
	case ndarray.Int64:
		x, _ := a.Int64s()
		y, _ := b.Int64s()
		return equalInts(x, y)
	}
	return false
}

func equalInts[T int32 | int64](x, y []T) bool {
	for k := range x {
		if x[k] != y[k] {
			return false
		}
	}
	return true
}

func noise(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

func ramp(seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(1 << 16)
	}
	return out
}
