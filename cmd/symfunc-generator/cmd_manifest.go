package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"symfunc-generator/internal/manifest"
)

func newManifestCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the built-in function list as a YAML manifest",
		Long: `Prints the built-in function list as a manifest that gen --manifest and
verify --manifest accept. Edit it to reorder, drop, add or rename functions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mf := manifest.Default()

			if outPath != "" {
				if err := manifest.WriteFile(mf, outPath); err != nil {
					return err
				}

				logger.Debug("wrote manifest", zap.String("path", outPath), zap.Int("functions", len(mf.Functions)))

				return nil
			}

			data, err := manifest.Marshal(mf)
			if err != nil {
				return fmt.Errorf("failed to marshal manifest: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}
