package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeEmptyName, "function name is empty", "", "names.yaml")
	d.AddWarning(CodeUnknownVersion, "unknown version", "", "names.yaml")

	var other Diagnostics
	other.AddInfo(CodeSymbolOverride, "declared as dirichletEta", "dirichlet_eta", "")
	other.AddError(CodeDuplicateName, "duplicate", "sin", "")

	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddError(CodeInvalidName, "not an identifier", "1sin", "")
	d.AddError(CodeDuplicateName, "listed twice", "cos", "names.yaml")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[1sin]: [INVALID_NAME] not an identifier; names.yaml [cos]: [DUPLICATE_NAME] listed twice",
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "plain"},
			want: "plain",
		},
		{
			name: "code and name",
			diag: Diagnostic{Code: CodeMissingWrapper, Message: "no wrapper", Name: "erf"},
			want: "[erf]: [MISSING_WRAPPER] no wrapper",
		},
		{
			name: "suggestions",
			diag: Diagnostic{
				Code:        CodeMismatchedWrap,
				Message:     "declared as sine",
				Name:        "sin",
				Source:      "./symengine",
				Suggestions: []string{"Sin"},
			},
			want: "./symengine [sin]: [MISMATCHED_WRAPPER] declared as sine (try: Sin)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
