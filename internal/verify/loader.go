package verify

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"symfunc-generator/internal/funcs"
)

// LoadMode specifies what information to load from packages. Syntax is
// parsed here rather than requested, since that would run cgo.
const LoadMode = packages.NeedName | packages.NeedFiles

// cgoPackage is the pseudo-package cgo exposes C symbols through.
const cgoPackage = "C"

// Wrapper is a top-level function that calls a native basic_* routine.
type Wrapper struct {
	Func     string
	Delegate string
	Pos      token.Position
}

// Mismatch is a wrapper declared under an unexpected name.
type Mismatch struct {
	Name funcs.Name
	Got  string
	Want string
	Pos  token.Position
}

// Report is the outcome of verifying one package.
type Report struct {
	Dir        string
	PkgPath    string
	Wrappers   map[funcs.Name][]Wrapper
	Missing    []funcs.Name
	Duplicated []funcs.Name
	Mismatched []Mismatch
}

// OK reports whether every entry has exactly one correctly named wrapper.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Duplicated) == 0 && len(r.Mismatched) == 0
}

// Package loads the Go package in dir and checks it against entries.
func Package(ctx context.Context, dir string, entries []funcs.Entry) (*Report, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %s: %w", dir, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}

	pkg := pkgs[0]

	files := sourceFiles(pkg)
	if len(files) == 0 {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("no Go files in %s: %v", dir, pkg.Errors)
		}

		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	wrappers, err := collectWrappers(files)
	if err != nil {
		return nil, err
	}

	return buildReport(dir, pkg.PkgPath, wrappers, entries), nil
}

// sourceFiles returns the non-test files of pkg. Files excluded by build
// constraints are included because cgo files are ignored when CGO_ENABLED=0.
func sourceFiles(pkg *packages.Package) []string {
	var files []string

	for _, f := range append(append([]string(nil), pkg.GoFiles...), pkg.IgnoredFiles...) {
		if !strings.HasSuffix(f, ".go") || strings.HasSuffix(f, "_test.go") {
			continue
		}

		if !slices.Contains(files, f) {
			files = append(files, f)
		}
	}

	slices.Sort(files)

	return files
}

// collectWrappers parses files and returns every top-level function that
// calls C.basic_*, in file and declaration order.
func collectWrappers(files []string) ([]Wrapper, error) {
	fset := token.NewFileSet()

	var wrappers []Wrapper

	for _, path := range files {
		file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Body == nil {
				continue
			}

			for _, delegate := range delegatesOf(fn) {
				wrappers = append(wrappers, Wrapper{
					Func:     fn.Name.Name,
					Delegate: delegate,
					Pos:      fset.Position(fn.Pos()),
				})
			}
		}
	}

	return wrappers, nil
}

// delegatesOf returns the distinct C.basic_* routines called by fn.
func delegatesOf(fn *ast.FuncDecl) []string {
	var delegates []string

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != cgoPackage {
			return true
		}

		if strings.HasPrefix(sel.Sel.Name, funcs.DelegatePrefix) && !slices.Contains(delegates, sel.Sel.Name) {
			delegates = append(delegates, sel.Sel.Name)
		}

		return true
	})

	return delegates
}

func buildReport(dir, pkgPath string, wrappers []Wrapper, entries []funcs.Entry) *Report {
	byDelegate := make(map[string][]Wrapper)
	for _, w := range wrappers {
		byDelegate[w.Delegate] = append(byDelegate[w.Delegate], w)
	}

	report := &Report{
		Dir:      dir,
		PkgPath:  pkgPath,
		Wrappers: make(map[funcs.Name][]Wrapper, len(entries)),
	}

	for _, e := range entries {
		found := byDelegate[e.Name.Delegate()]
		report.Wrappers[e.Name] = found

		switch len(found) {
		case 0:
			report.Missing = append(report.Missing, e.Name)
		case 1:
			if want := e.ExportedDeclared(); found[0].Func != want {
				report.Mismatched = append(report.Mismatched, Mismatch{
					Name: e.Name,
					Got:  found[0].Func,
					Want: want,
					Pos:  found[0].Pos,
				})
			}
		default:
			report.Duplicated = append(report.Duplicated, e.Name)
		}
	}

	return report
}
