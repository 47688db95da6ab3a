package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Err(t *testing.T) {
	var d Diagnostics

	require.NoError(t, d.Err())
	assert.False(t, d.HasErrors())

	d.AddWarning(CodeEmptyKey, "empty key", "t", "", 4)
	require.NoError(t, d.Err())
	assert.True(t, d.HasWarnings())

	d.AddError(CodeDuplicateKey, `key "a" already defined at line 1`, "t", "a", 3)
	d.AddError(CodeDecode, "bad value", "", "b", 0)

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t,
		`[t] a (line 3): [DUPLICATE_KEY] key "a" already defined at line 1; b: [DECODE] bad value`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeDecode, "one", "", "", 0)
	b.AddError(CodeDecode, "two", "", "", 0)
	b.AddWarning(CodeEmptyKey, "three", "", "", 0)

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		d        Diagnostic
		expected string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: "X", Message: "coded"}, "[X] coded"},
		{Diagnostic{Table: "t", Message: "m"}, "[t]: m"},
		{Diagnostic{Key: "k", Line: 7, Message: "m"}, "k (line 7): m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
