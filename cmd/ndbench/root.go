package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/dispatch"
)

// app holds the state shared by subcommands once flags are parsed.
type app struct {
	logLevel     string
	forceGeneric bool

	logger *slog.Logger
}

// options returns the dispatch options implied by the global flags.
func (a *app) options() []dispatch.Option {
	opts := []dispatch.Option{dispatch.WithLogger(a.logger)}
	if a.forceGeneric {
		opts = append(opts, dispatch.WithGenericKernels())
	}
	return opts
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "ndbench",
		Short:         "Typed multi-array dispatch harness",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", envLevel(), "log level: debug, info, warn, error (env "+envLogLevel+")")
	rootCmd.PersistentFlags().BoolVar(&a.forceGeneric, "force-generic", envBool(envForceGeneric), "use only the portable kernel variants (env "+envForceGeneric+")")

	rootCmd.AddCommand(
		newDemoCmd(a),
		newBenchCmd(a),
		newKernelsCmd(a),
	)
	return rootCmd
}
