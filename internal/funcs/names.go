package funcs

import (
	"regexp"
	"slices"

	"symfunc-generator/internal/common"
)

// DelegatePrefix is prepended to a token to form the native routine name.
const DelegatePrefix = "basic_"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Name is a function token such as "sin" or "dirichlet_eta".
type Name string

// defaultNames is the fixed wrapper list. Order is significant.
var defaultNames = []Name{
	"expand", "neg", "abs",
	"erf", "erfc",
	"sin", "cos", "tan", "asin", "acos", "atan",
	"csc", "sec", "cot", "acsc", "asec", "acot",
	"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
	"csch", "sech", "coth", "acsch", "asech", "acoth",
	"lambertw", "zeta", "dirichlet_eta", "gamma", "loggamma",
	"sqrt", "cbrt", "exp", "log",
}

// Default returns a copy of the fixed wrapper list.
func Default() []Name {
	return slices.Clone(defaultNames)
}

// Known reports whether n is in the fixed wrapper list.
func (n Name) Known() bool {
	return slices.Contains(defaultNames, n)
}

// Valid reports whether n is a non-empty identifier.
func (n Name) Valid() bool {
	return identRe.MatchString(string(n))
}

// Delegate returns the native routine name, e.g. "basic_sin".
func (n Name) Delegate() string {
	return DelegatePrefix + string(n)
}

// Exported returns the Go exported identifier for n, e.g. "DirichletEta".
func (n Name) Exported() string {
	return common.CamelCase(string(n))
}

func (n Name) String() string {
	return string(n)
}

// Entry is a function token plus an optional declared-name override.
type Entry struct {
	Name Name
	// Symbol replaces Name as the declared function name when set.
	Symbol string
}

// Entries wraps names into entries without overrides.
func Entries(names []Name) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Name: n})
	}

	return entries
}

// Declared returns the declared function name as written in the source
// language that keeps the token verbatim.
func (e Entry) Declared() string {
	if e.Symbol != "" {
		return e.Symbol
	}

	return string(e.Name)
}

// ExportedDeclared returns the Go exported form of Declared.
func (e Entry) ExportedDeclared() string {
	if e.Symbol != "" {
		return common.CamelCase(e.Symbol)
	}

	return e.Name.Exported()
}
