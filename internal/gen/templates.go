package gen

import (
	"strings"
	"text/template"
)

// templateKey selects one block template.
type templateKey struct {
	Target   Target
	Style    Style
	NilGuard bool
}

// blockData fills every slot of a block template. All fields derive from
// the same function token.
type blockData struct {
	// Token is the raw function token used in documentation text.
	Token string
	// Declared is the name of the generated function.
	Declared string
	// Delegate is the native routine, always "basic_" + Token.
	Delegate string
}

// headerData fills the Go file header.
type headerData struct {
	Generator   string
	PackageName string
	Include     string
}

var (
	// templates holds the lines of each block. A block starts with an empty
	// line so consecutive blocks are separated by a blank line, and the
	// renderer appends the final newline.
	templates map[templateKey][]string

	goHeaderTemplate = template.Must(template.New("header").Parse(strings.Join([]string{
		"// Code generated by {{.Generator}}. DO NOT EDIT.",
		"",
		"package {{.PackageName}}",
		"",
		"// #include <{{.Include}}>",
		`import "C"`,
		"",
	}, "\n")))
)

func init() {
	templates = map[templateKey][]string{}

	swiftDoc := []string{
		"",
		"/**",
		" {{.Token}} the given symbol.",
		" ",
		" - Parameters _: The symbol to {{.Token}}.",
		" ",
		" - Returns: A new {{.Token}}ed symbol.",
	}

	// Swift, optional: the long-standing Functions.swift output.
	templates[templateKey{TargetSwift, StyleOptional, false}] = concat(swiftDoc, []string{
		" */",
		"public func {{.Declared}}(_ symbol: Symbol) -> Symbol? {",
		"    let newSymbol = Symbol()",
		"    ",
		"    do {",
		"        try checkReturn({{.Delegate}}(newSymbol.pointer, symbol.pointer))",
		"    } catch {",
		"        return nil",
		"    }",
		"    return newSymbol",
		"}",
	})

	templates[templateKey{TargetSwift, StyleOptional, true}] = concat(swiftDoc, []string{
		" */",
		"public func {{.Declared}}(_ symbolOpt: Symbol?) -> Symbol? {",
		"    guard let symbol = symbolOpt else { return nil }",
		"    ",
		"    let newSymbol = Symbol()",
		"    ",
		"    do {",
		"        try checkReturn({{.Delegate}}(newSymbol.pointer, symbol.pointer))",
		"    } catch {",
		"        return nil",
		"    }",
		"    return newSymbol",
		"}",
	})

	swiftThrows := []string{
		" ",
		" - Throws: The `SymEngineError` reported by `{{.Delegate}}`.",
		" */",
	}

	templates[templateKey{TargetSwift, StyleError, false}] = concat(swiftDoc, swiftThrows, []string{
		"public func {{.Declared}}(_ symbol: Symbol) throws -> Symbol {",
		"    let newSymbol = Symbol()",
		"    try checkReturn({{.Delegate}}(newSymbol.pointer, symbol.pointer))",
		"    return newSymbol",
		"}",
	})

	templates[templateKey{TargetSwift, StyleError, true}] = concat(swiftDoc, swiftThrows, []string{
		"public func {{.Declared}}(_ symbolOpt: Symbol?) throws -> Symbol? {",
		"    guard let symbol = symbolOpt else { return nil }",
		"    ",
		"    let newSymbol = Symbol()",
		"    try checkReturn({{.Delegate}}(newSymbol.pointer, symbol.pointer))",
		"    return newSymbol",
		"}",
	})

	goDoc := []string{
		"",
		"// {{.Declared}} {{.Token}} the given symbol.",
		"//",
		"// The symbol to {{.Token}} is passed to C.{{.Delegate}}.",
		"//",
	}

	goNilGuard := func(ret string) []string {
		return []string{
			"\tif symbol == nil {",
			"\t\treturn " + ret,
			"\t}",
			"",
		}
	}

	goOptionalSig := []string{
		"// Returns a new {{.Token}}ed symbol, or nil if the computation failed.",
		"func {{.Declared}}(symbol *Symbol) *Symbol {",
	}

	goOptionalBody := []string{
		"\tnewSymbol := NewSymbol()",
		"\tif err := checkReturn(C.{{.Delegate}}(newSymbol.ptr, symbol.ptr)); err != nil {",
		"\t\treturn nil",
		"\t}",
		"",
		"\treturn newSymbol",
		"}",
	}

	templates[templateKey{TargetGo, StyleOptional, false}] = concat(goDoc, goOptionalSig, goOptionalBody)
	templates[templateKey{TargetGo, StyleOptional, true}] = concat(goDoc, goOptionalSig, goNilGuard("nil"), goOptionalBody)

	goErrorSig := []string{
		"// Returns a new {{.Token}}ed symbol, or the error reported by the native call.",
		"func {{.Declared}}(symbol *Symbol) (*Symbol, error) {",
	}

	goErrorBody := []string{
		"\tnewSymbol := NewSymbol()",
		"\tif err := checkReturn(C.{{.Delegate}}(newSymbol.ptr, symbol.ptr)); err != nil {",
		"\t\treturn nil, err",
		"\t}",
		"",
		"\treturn newSymbol, nil",
		"}",
	}

	templates[templateKey{TargetGo, StyleError, false}] = concat(goDoc, goErrorSig, goErrorBody)
	templates[templateKey{TargetGo, StyleError, true}] = concat(goDoc, goErrorSig, goNilGuard("nil, ErrNilSymbol"), goErrorBody)
}

func concat(parts ...[]string) []string {
	var lines []string
	for _, p := range parts {
		lines = append(lines, p...)
	}

	return lines
}
