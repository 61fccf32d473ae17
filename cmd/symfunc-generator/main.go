// Package main provides the CLI entrypoint for symfunc-generator.
//
// symfunc-generator prints one wrapper function per unary SymEngine routine:
//   - Swift wrappers identical to the historical Functions.swift
//   - Go cgo wrappers for a symengine binding package
//
// It can also dump the built-in function list as a YAML manifest and verify
// that an existing Go binding wraps every listed function exactly once.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger = zap.NewNop()
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand behaves like "gen" with default flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "symfunc-generator",
		Short: "Generate SymEngine unary function wrappers",
		Long: `symfunc-generator emits one wrapper declaration per SymEngine unary function
(sin, erf, gamma, lambertw, ...). Each wrapper allocates a result symbol,
calls basic_<name> and turns a native failure into nil.

Output goes to stdout unless --out is given. Without flags the output is the
Swift source of the SymEngine binding's Functions.swift.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}

			logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, defaultGenOptions())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newManifestCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}

// newLogger builds the stderr logger. Progress is logged at debug level, so a
// plain run only reports warnings and errors and the generated text is the
// sole output.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return l, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
