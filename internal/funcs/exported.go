package funcs

import (
	"fmt"
	"go/token"

	"symfunc-generator/internal/diagnostic"
)

// ValidExported reports whether s can be declared as an exported Go function.
func ValidExported(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}

// ValidateExported checks the Go names entries are declared under. CamelCase
// folds distinct tokens together (x and _x both become X) and can yield
// something that is not an identifier at all (_ or _1), so the check runs on
// ExportedDeclared rather than on the token. Entries that already fail
// Validate are skipped.
func ValidateExported(entries []Entry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]Name, len(entries))

	for _, e := range entries {
		if !e.Name.Valid() || (e.Symbol != "" && !Name(e.Symbol).Valid()) {
			continue
		}

		exported := e.ExportedDeclared()
		if !ValidExported(exported) {
			diags.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("Go name %q derived from %q is not an exported identifier", exported, e.Declared()),
				e.Name.String(), "")

			continue
		}

		if other, ok := seen[exported]; ok {
			if other == e.Name {
				continue
			}

			diags.AddError(diagnostic.CodeDuplicateSymbol,
				fmt.Sprintf("Go name %q already used by %s", exported, other), e.Name.String(), "")

			continue
		}

		seen[exported] = e.Name
	}

	return diags
}
