package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"symfunc-generator/internal/diagnostic"
	"symfunc-generator/internal/funcs"
	"symfunc-generator/internal/gen"
	"symfunc-generator/internal/manifest"
)

// genOptions are the flags of the gen command.
type genOptions struct {
	target       string
	style        string
	nilGuard     bool
	packageName  string
	include      string
	header       bool
	format       bool
	manifestPath string
	outPath      string

	// targetSet and styleSet record explicit flags, which win over the manifest.
	targetSet bool
	styleSet  bool
}

func defaultGenOptions() *genOptions {
	config := gen.DefaultConfig()

	return &genOptions{
		target:      config.Target.String(),
		style:       config.Style.String(),
		packageName: config.PackageName,
		include:     config.Include,
	}
}

func newGenCmd() *cobra.Command {
	opts := defaultGenOptions()

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print one wrapper per function",
		Long: `Generates one wrapper declaration per function, in list order.

Examples:
  symfunc-generator gen > Sources/SymEngine/Functions.swift
  symfunc-generator gen --target go --header --format --out symengine/functions_gen.go
  symfunc-generator gen --manifest functions.yaml --style error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.targetSet = cmd.Flags().Changed("target")
			opts.styleSet = cmd.Flags().Changed("style")

			return runGen(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.target, "target", "t", opts.target, "Output language: swift or go")
	flags.StringVarP(&opts.style, "style", "s", opts.style, "Failure policy: optional (nil) or error")
	flags.BoolVar(&opts.nilGuard, "nil-guard", false, "Return nil early when the input symbol is absent")
	flags.StringVar(&opts.packageName, "package", opts.packageName, "Package clause for Go output")
	flags.StringVar(&opts.include, "include", opts.include, "C header named in the cgo preamble")
	flags.BoolVar(&opts.header, "header", false, "Emit the generated-code header, package clause and cgo preamble (Go)")
	flags.BoolVar(&opts.format, "format", false, "Run Go output through gofmt")
	flags.StringVarP(&opts.manifestPath, "manifest", "m", "", "YAML manifest replacing the built-in function list")
	flags.StringVarP(&opts.outPath, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runGen(cmd *cobra.Command, opts *genOptions) error {
	entries := funcs.Entries(funcs.Default())

	if opts.manifestPath != "" {
		mf, err := loadManifest(opts.manifestPath)
		if err != nil {
			return err
		}

		entries = mf.Entries()

		if mf.Target != "" && !opts.targetSet {
			opts.target = mf.Target
		}

		if mf.Style != "" && !opts.styleSet {
			opts.style = mf.Style
		}
	}

	config, err := opts.config()
	if err != nil {
		return err
	}

	g, err := gen.New(config)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	var (
		w   io.Writer = cmd.OutOrStdout()
		buf bytes.Buffer
	)

	if opts.outPath != "" {
		w = &buf
	}

	n, err := g.Generate(w, entries)
	if err != nil {
		return fmt.Errorf("generating wrappers: %w", err)
	}

	if opts.outPath != "" {
		if err := gen.WriteFile(opts.outPath, buf.Bytes()); err != nil {
			return err
		}
	}

	logger.Debug("generated wrappers",
		zap.Int("count", n),
		zap.Stringer("target", config.Target),
		zap.Stringer("style", config.Style),
		zap.String("out", outName(opts.outPath)))

	return nil
}

func (o *genOptions) config() (gen.Config, error) {
	config := gen.DefaultConfig()

	target, err := gen.ParseTarget(o.target)
	if err != nil {
		return config, err
	}

	style, err := gen.ParseStyle(o.style)
	if err != nil {
		return config, err
	}

	config.Target = target
	config.Style = style
	config.NilGuard = o.nilGuard
	config.PackageName = o.packageName
	config.Include = o.include
	config.Header = o.header
	config.Format = o.format
	config.OutputPath = o.outPath

	return config, nil
}

// loadManifest reads and validates a manifest, logging every non-error
// diagnostic.
func loadManifest(path string) (*manifest.File, error) {
	mf, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded manifest", zap.String("path", path), zap.String("dump", spew.Sdump(mf)))

	diags := manifest.Validate(mf, path)
	logDiagnostics(diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return mf, nil
}

func logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		logger.Warn(d.Message, zap.String("code", d.Code), zap.String("name", d.Name), zap.String("source", d.Source))
	}

	for _, d := range diags.Infos {
		logger.Debug(d.Message, zap.String("code", d.Code), zap.String("name", d.Name), zap.String("source", d.Source))
	}
}

func outName(path string) string {
	if path == "" {
		return "stdout"
	}

	return path
}
