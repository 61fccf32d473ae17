package manifest

import (
	"fmt"
	"strings"

	"symfunc-generator/internal/diagnostic"
	"symfunc-generator/internal/funcs"
	"symfunc-generator/internal/match"
)

// maxSuggestions bounds the "did you mean" list of an unknown function.
const maxSuggestions = 3

// Validate checks the manifest version and its function list. Functions
// outside the built-in list are allowed but warned about, since the native
// library may not export them. A Go manifest also has its exported names
// checked. Target and style strings are otherwise left to the caller, which
// owns their parsing.
func Validate(mf *File, source string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if mf.Version != CurrentVersion {
		diags.AddWarning(diagnostic.CodeUnknownVersion,
			fmt.Sprintf("manifest version %q, expected %q", mf.Version, CurrentVersion), "", source)
	}

	var known []string
	for _, n := range funcs.Default() {
		known = append(known, n.String())
	}

	for _, f := range mf.Functions {
		n := funcs.Name(f.Name)
		if !n.Valid() || n.Known() {
			continue
		}

		diags.Warnings = append(diags.Warnings, diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Code:        diagnostic.CodeUnknownFunction,
			Message:     fmt.Sprintf("%s is not a built-in function; the native library must export %s", n, n.Delegate()),
			Name:        f.Name,
			Source:      source,
			Suggestions: match.Suggest(f.Name, known, maxSuggestions),
		})
	}

	fnDiags := funcs.Validate(mf.Entries())
	if strings.EqualFold(mf.Target, "go") {
		fnDiags.Merge(funcs.ValidateExported(mf.Entries()))
	}

	for _, group := range [][]diagnostic.Diagnostic{fnDiags.Errors, fnDiags.Warnings, fnDiags.Infos} {
		for i := range group {
			group[i].Source = source
		}
	}

	diags.Merge(fnDiags)

	return diags
}
