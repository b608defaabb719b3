package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodePolicyMissing, "enum skipped: no policy", "payment.Kind", "")
	d.AddInfo(CodeLabelNearDuplicate, "labels look alike", "payment.Kind", "Pix")
	assert.True(t, d.IsValid())

	d.AddError(CodeLabelMalformed, "invalid label literal", "payment.Kind", "Debit")
	d.AddError(CodeConfigUnknownType, "type not found", "store.Missing", "")

	require.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		"[payment.Kind.Debit]: [label_malformed] invalid label literal; [store.Missing]: [config_unknown_type] type not found")

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning(CodeMemberAlias, "alias", "E", "B")
	b.AddError(CodeNoMembers, "no members", "F", "")
	b.AddInfo(CodeLabelNearDuplicate, "near", "F", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "x", Message: "msg", Pos: "a.go:3:1", Enum: "E"}
	assert.Equal(t, "a.go:3:1 [E]: [x] msg", d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
