package funcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symfunc-generator/internal/diagnostic"
)

func TestDefault_OrderAndSize(t *testing.T) {
	names := Default()

	require.Len(t, names, 38)
	assert.Equal(t, Name("expand"), names[0])
	assert.Equal(t, Name("dirichlet_eta"), names[31])
	assert.Equal(t, Name("log"), names[len(names)-1])

	seen := make(map[Name]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	names := Default()
	names[0] = "mutated"

	assert.Equal(t, Name("expand"), Default()[0])
}

func TestDefault_PassesValidation(t *testing.T) {
	diags := Validate(Entries(Default()))

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Infos)
}

func TestName_Derivations(t *testing.T) {
	tests := []struct {
		name     Name
		delegate string
		exported string
	}{
		{"sin", "basic_sin", "Sin"},
		{"abs", "basic_abs", "Abs"},
		{"dirichlet_eta", "basic_dirichlet_eta", "DirichletEta"},
		{"loggamma", "basic_loggamma", "Loggamma"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.delegate, tt.name.Delegate())
			assert.Equal(t, tt.exported, tt.name.Exported())
			assert.True(t, tt.name.Valid())
		})
	}
}

func TestName_Valid(t *testing.T) {
	assert.True(t, Name("_x1").Valid())
	assert.False(t, Name("").Valid())
	assert.False(t, Name("1sin").Valid())
	assert.False(t, Name("sin cos").Valid())
	assert.False(t, Name("log-gamma").Valid())
}

func TestEntry_Declared(t *testing.T) {
	plain := Entry{Name: "dirichlet_eta"}
	assert.Equal(t, "dirichlet_eta", plain.Declared())
	assert.Equal(t, "DirichletEta", plain.ExportedDeclared())

	override := Entry{Name: "dirichlet_eta", Symbol: "dirichletEta"}
	assert.Equal(t, "dirichletEta", override.Declared())
	assert.Equal(t, "DirichletEta", override.ExportedDeclared())
}

func TestValidate_Problems(t *testing.T) {
	entries := []Entry{
		{Name: "sin"},
		{Name: ""},
		{Name: "2cos"},
		{Name: "sin"},
		{Name: "tan", Symbol: "tangent"},
		{Name: "tangent"},
		{Name: "erf", Symbol: "bad symbol"},
	}

	diags := Validate(entries)

	codes := make([]string, 0, len(diags.Errors))
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	assert.Equal(t, []string{
		diagnostic.CodeEmptyName,
		diagnostic.CodeInvalidName,
		diagnostic.CodeDuplicateName,
		diagnostic.CodeDuplicateSymbol,
		diagnostic.CodeInvalidName,
	}, codes)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeSymbolOverride, diags.Infos[0].Code)
	assert.Equal(t, "tan", diags.Infos[0].Name)
}

func TestValidate_Empty(t *testing.T) {
	diags := Validate(nil)
	assert.True(t, diags.IsValid())
}

func TestValidateExported(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		codes   []string
	}{
		{
			name:    "default list",
			entries: Entries(Default()),
		},
		{
			name:    "override folds onto token",
			entries: []Entry{{Name: "dirichlet_eta"}, {Name: "dirichletEta"}},
			codes:   []string{diagnostic.CodeDuplicateSymbol},
		},
		{
			name:    "leading underscore folds",
			entries: []Entry{{Name: "x"}, {Name: "_x"}},
			codes:   []string{diagnostic.CodeDuplicateSymbol},
		},
		{
			name:    "blank identifier",
			entries: []Entry{{Name: "_"}},
			codes:   []string{diagnostic.CodeInvalidName},
		},
		{
			name:    "digit after underscore",
			entries: []Entry{{Name: "_1"}},
			codes:   []string{diagnostic.CodeInvalidName},
		},
		{
			name:    "invalid symbol left to Validate",
			entries: []Entry{{Name: "erf", Symbol: "bad symbol"}},
		},
		{
			name:    "repeated token left to Validate",
			entries: []Entry{{Name: "sin"}, {Name: "sin"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := ValidateExported(tt.entries)

			var codes []string
			for _, d := range diags.Errors {
				codes = append(codes, d.Code)
			}

			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestValidExported(t *testing.T) {
	assert.True(t, ValidExported("DirichletEta"))
	assert.False(t, ValidExported("sin"))
	assert.False(t, ValidExported(""))
	assert.False(t, ValidExported("1"))
}
