package funcs

import (
	"fmt"

	"symfunc-generator/internal/diagnostic"
)

// Validate checks entries for empty, malformed or duplicated tokens and for
// declared names that collide. It never stops at the first problem.
func Validate(entries []Entry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seenNames := make(map[Name]int, len(entries))
	seenSymbols := make(map[string]Name, len(entries))

	for i, e := range entries {
		if e.Name == "" {
			diags.AddError(diagnostic.CodeEmptyName,
				fmt.Sprintf("function name at position %d is empty", i), "", "")

			continue
		}

		if !e.Name.Valid() {
			diags.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("%q is not an identifier", e.Name), e.Name.String(), "")

			continue
		}

		if first, ok := seenNames[e.Name]; ok {
			diags.AddError(diagnostic.CodeDuplicateName,
				fmt.Sprintf("listed at positions %d and %d", first, i), e.Name.String(), "")

			continue
		}

		seenNames[e.Name] = i

		if e.Symbol != "" {
			if !Name(e.Symbol).Valid() {
				diags.AddError(diagnostic.CodeInvalidName,
					fmt.Sprintf("symbol %q is not an identifier", e.Symbol), e.Name.String(), "")

				continue
			}

			diags.AddInfo(diagnostic.CodeSymbolOverride,
				"declared as "+e.Symbol, e.Name.String(), "")
		}

		declared := e.Declared()
		if other, ok := seenSymbols[declared]; ok {
			diags.AddError(diagnostic.CodeDuplicateSymbol,
				fmt.Sprintf("declared name %q already used by %s", declared, other), e.Name.String(), "")

			continue
		}

		seenSymbols[declared] = e.Name
	}

	return diags
}
