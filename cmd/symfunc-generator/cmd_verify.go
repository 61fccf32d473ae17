package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"symfunc-generator/internal/funcs"
	"symfunc-generator/internal/verify"
)

func newVerifyCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check that a Go binding wraps every function exactly once",
		Long: `Loads the Go package in dir and reports functions with no wrapper, more
than one wrapper, or a wrapper declared under an unexpected name. A wrapper is
any top-level function calling C.basic_<name>.

Example:
  symfunc-generator verify ./symengine`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := funcs.Entries(funcs.Default())

			if manifestPath != "" {
				mf, err := loadManifest(manifestPath)
				if err != nil {
					return err
				}

				entries = mf.Entries()
			}

			report, err := verify.Package(cmd.Context(), args[0], entries)
			if err != nil {
				return err
			}

			diags := report.Diagnostics()
			for _, d := range diags.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)
			}

			logger.Debug("verified package",
				zap.String("pkg", report.PkgPath),
				zap.Int("functions", len(entries)),
				zap.Int("problems", len(diags.Errors)))

			if diags.HasErrors() {
				return fmt.Errorf("verification failed: %d problem(s) in %s", len(diags.Errors), args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d wrappers in %s\n", len(entries), report.PkgPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest replacing the built-in function list")

	return cmd
}
