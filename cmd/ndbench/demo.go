package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/dispatch"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// scenario is one call of the demo: the 2x2 inputs in the given kinds and
// layout, checked against tag.
type scenario struct {
	tag    string
	value  ndarray.Kind
	index  ndarray.Kind
	layout ndarray.Layout
}

var scenarios = []scenario{
	{"f64_i32", ndarray.Float64, ndarray.Int32, ndarray.RowMajor},
	{"f64F_i32F", ndarray.Float64, ndarray.Int32, ndarray.ColMajor},
	{"f64C_i32C", ndarray.Float64, ndarray.Int32, ndarray.RowMajor},
	{"f32_i32", ndarray.Float32, ndarray.Int32, ndarray.RowMajor},
	{"f64_i64", ndarray.Float64, ndarray.Int64, ndarray.RowMajor},
}

var (
	demoA = [][]int64{{1, 2}, {3, 4}}
	demoB = [][]int64{{5, 6}, {7, 8}}
)

func newDemoCmd(a *app) *cobra.Command {
	var kernelName string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the 2x2 scenarios for every observed tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(a.options(), dispatch.WithKernel(kernelName))
			for _, sc := range scenarios {
				if err := runScenario(cmd.OutOrStdout(), sc, opts); err != nil {
					return fmt.Errorf("%s: %w", sc.tag, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kernelName, "kernel", dispatch.DefaultKernel, "kernel to run")
	return cmd
}

func runScenario(w io.Writer, sc scenario, opts []dispatch.Option) error {
	build := func(rows [][]int64, kind ndarray.Kind) (*ndarray.Array, error) {
		base, err := ndarray.FromRows(rows, ndarray.RowMajor)
		if err != nil {
			return nil, err
		}
		return ndarray.Convert(base, kind, sc.layout)
	}

	var arrays [4]*ndarray.Array
	for n, in := range []struct {
		rows [][]int64
		kind ndarray.Kind
	}{
		{demoA, sc.value}, {demoB, sc.value}, {demoA, sc.index}, {demoB, sc.index},
	} {
		arr, err := build(in.rows, in.kind)
		if err != nil {
			return err
		}
		arrays[n] = arr
	}

	res, err := dispatch.Compute(arrays[0], arrays[1], arrays[2], arrays[3],
		append(opts, dispatch.WithTag(sc.tag))...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "x: %s %s | i: %s %s\n",
		res.Values.Kind(), ndarray.Dump(res.Values),
		res.Indices.Kind(), ndarray.Dump(res.Indices))
	return err
}
