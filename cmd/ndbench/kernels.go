package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

func newKernelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List registered kernel variants and the ones this CPU selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features := cpu.DetectFeatures()
			if a.forceGeneric {
				features = features.Generic()
			}
			return listKernels(cmd.OutOrStdout(), kernel.Global, features)
		},
	}
}

func listKernels(w io.Writer, reg *kernel.Registry, features cpu.Features) error {
	if _, err := fmt.Fprintf(w, "cpu: %s, best SIMD level %s\n\n", features.Architecture, features.Best()); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KERNEL", "VARIANT", "SIMD", "PRIORITY", "PAIRS", "SELECTED FOR"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, e := range reg.ListEntries() {
		var selected []string
		for _, v := range []ndarray.Kind{ndarray.Float32, ndarray.Float64} {
			for _, i := range []ndarray.Kind{ndarray.Int32, ndarray.Int64} {
				got, err := reg.Lookup(e.Name, features, v, i)
				if err == nil && got.Variant == e.Variant {
					selected = append(selected, v.Short()+"/"+i.Short())
				}
			}
		}
		table.Append([]string{
			e.Name,
			e.Variant,
			e.SIMDLevel.String(),
			strconv.Itoa(e.Priority),
			strings.Join(e.Pairs(), " "),
			strings.Join(selected, " "),
		})
	}
	table.Render()
	return nil
}
