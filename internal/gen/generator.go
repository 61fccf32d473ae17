package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"symfunc-generator/internal/funcs"
)

// GeneratorName is written into the Go "Code generated" header.
const GeneratorName = "symfunc-generator"

// ErrInvalidNames is returned when the function list fails validation.
var ErrInvalidNames = errors.New("invalid function names")

// Config holds configuration for code generation.
type Config struct {
	// Target is the language of the generated wrappers.
	Target Target
	// Style is the failure policy of the generated wrappers.
	Style Style
	// NilGuard makes wrappers return early when the input symbol is absent.
	NilGuard bool
	// PackageName is the package clause of Go output.
	PackageName string
	// Include is the C header named in the cgo preamble of Go output.
	Include string
	// Header emits the generated-code header, package clause and cgo preamble
	// before the first Go block.
	Header bool
	// Format runs Go output through go/format before writing it.
	Format bool
	// OutputPath is where the output is headed. Only used to place the
	// unformatted sidecar when formatting fails.
	OutputPath string
}

// DefaultConfig returns the configuration that reproduces the historical
// Swift output.
func DefaultConfig() Config {
	return Config{
		Target:      TargetSwift,
		Style:       StyleOptional,
		PackageName: "symengine",
		Include:     "symengine/cwrapper.h",
	}
}

// Generator renders wrapper declarations.
type Generator struct {
	config Config
	block  *template.Template
}

// New creates a Generator for the configured target and style.
func New(config Config) (*Generator, error) {
	if !config.Target.IsValid() {
		return nil, fmt.Errorf("unsupported target %s", config.Target)
	}

	if !config.Style.IsValid() {
		return nil, fmt.Errorf("unsupported style %s", config.Style)
	}

	lines, ok := templates[templateKey{config.Target, config.Style, config.NilGuard}]
	if !ok {
		return nil, fmt.Errorf("no template for %s/%s", config.Target, config.Style)
	}

	name := config.Target.String() + "-" + config.Style.String()

	block, err := template.New(name).Option("missingkey=error").Parse(strings.Join(lines, "\n") + "\n")
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}

	return &Generator{config: config, block: block}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Render returns the declaration block for a single entry.
func (g *Generator) Render(e funcs.Entry) (string, error) {
	var sb strings.Builder
	if err := g.renderBlock(&sb, e); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Generate writes one declaration per entry to w, in order, and returns the
// number of declarations written. Entries are validated before anything is
// written, for Go against the exported names they will be declared under. An
// empty list writes nothing.
func (g *Generator) Generate(w io.Writer, entries []funcs.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	diags := funcs.Validate(entries)
	if g.config.Target == TargetGo {
		diags.Merge(funcs.ValidateExported(entries))
	}

	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNames, diags.Error())
	}

	if g.config.Target == TargetGo && g.config.Format {
		return g.generateFormatted(w, entries)
	}

	return g.stream(w, entries)
}

// stream renders each block straight to w.
func (g *Generator) stream(w io.Writer, entries []funcs.Entry) (int, error) {
	if g.config.Target == TargetGo && g.config.Header {
		if err := g.renderHeader(w); err != nil {
			return 0, err
		}
	}

	for i, e := range entries {
		if err := g.renderBlock(w, e); err != nil {
			return i, fmt.Errorf("generating %s: %w", e.Name, err)
		}
	}

	return len(entries), nil
}

// generateFormatted buffers the whole Go output so it can be formatted.
func (g *Generator) generateFormatted(w io.Writer, entries []funcs.Entry) (int, error) {
	var buf bytes.Buffer

	n, err := g.stream(&buf, entries)
	if err != nil {
		return 0, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputPath != "" {
			_ = writeDebugUnformatted(g.config.OutputPath, buf.Bytes())
		}

		return 0, fmt.Errorf("formatting code: %w", err)
	}

	if _, err := w.Write(formatted); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	return n, nil
}

func (g *Generator) renderHeader(w io.Writer) error {
	data := headerData{
		Generator:   GeneratorName,
		PackageName: g.config.PackageName,
		Include:     g.config.Include,
	}

	if err := goHeaderTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("executing header template: %w", err)
	}

	return nil
}

func (g *Generator) renderBlock(w io.Writer, e funcs.Entry) error {
	if !e.Name.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidNames, e.Name)
	}

	if g.config.Target == TargetGo && !funcs.ValidExported(e.ExportedDeclared()) {
		return fmt.Errorf("%w: %q has no exported Go name", ErrInvalidNames, e.Name)
	}

	if err := g.block.Execute(w, g.blockData(e)); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	return nil
}

func (g *Generator) blockData(e funcs.Entry) blockData {
	declared := e.Declared()
	if g.config.Target == TargetGo {
		declared = e.ExportedDeclared()
	}

	return blockData{
		Token:    e.Name.String(),
		Declared: declared,
		Delegate: e.Name.Delegate(),
	}
}
