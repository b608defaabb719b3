package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/options"
)

func TestExport(t *testing.T) {
	p := Resolve([]*analyze.EnumInfo{paymentMethod(options.PolicyThrow)})
	out := Export(p)

	require.Len(t, out.Enums, 1)

	e := out.Enums[0]
	assert.Equal(t, "example.com/payment.Method", e.Type)
	assert.Equal(t, "throw", e.Policy)
	assert.Equal(t, []string{"Cartão de crédito", "Pix", "Cash"}, e.Labels)
	assert.Equal(t, []string{"Cash=Dinheiro"}, e.Aliases)

	require.Len(t, e.Forward, 6)
	assert.Equal(t, ExportedEntry{Key: "Debit", Value: "fail(missing_label: Debit)"}, e.Forward[2])

	last := e.Reverse[len(e.Reverse)-1]
	assert.Equal(t, ExportedEntry{Key: "_", Value: "fail(no_match)", Default: true}, last)
}

func TestExportYAML(t *testing.T) {
	p := Resolve([]*analyze.EnumInfo{paymentMethod(options.PolicyIgnore)})

	data, err := ExportYAML(p)
	require.NoError(t, err)

	var back ExportedPlan
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, Export(p), &back)
	assert.Contains(t, string(data), "type: example.com/payment.Method")
}
