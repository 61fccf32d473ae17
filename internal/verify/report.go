package verify

import (
	"fmt"
	"strings"

	"symfunc-generator/internal/diagnostic"
)

// Diagnostics converts the report into diagnostics. Missing, duplicated and
// mismatched wrappers are all errors.
func (r *Report) Diagnostics() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, n := range r.Missing {
		diags.AddError(diagnostic.CodeMissingWrapper,
			fmt.Sprintf("no function calls C.%s", n.Delegate()), n.String(), r.Dir)
	}

	for _, n := range r.Duplicated {
		var where []string
		for _, w := range r.Wrappers[n] {
			where = append(where, fmt.Sprintf("%s (%s)", w.Func, w.Pos))
		}

		diags.AddError(diagnostic.CodeDuplicateWrap,
			fmt.Sprintf("C.%s is called by %s", n.Delegate(), strings.Join(where, ", ")), n.String(), r.Dir)
	}

	for _, m := range r.Mismatched {
		d := diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        diagnostic.CodeMismatchedWrap,
			Message:     fmt.Sprintf("declared as %s at %s", m.Got, m.Pos),
			Name:        m.Name.String(),
			Source:      r.Dir,
			Suggestions: []string{m.Want},
		}
		diags.Errors = append(diags.Errors, d)
	}

	return diags
}
