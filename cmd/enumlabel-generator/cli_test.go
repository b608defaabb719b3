package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"enumlabel-generator/internal/clierr"
	"enumlabel-generator/internal/plan"
)

const paymentPkg = "enumlabel-generator/examples/payment"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCLIContract(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	for _, c := range []string{"gen", "check", "inspect", "version", "--config", "--verbose"} {
		assert.Contains(t, out, c)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "enumlabel-generator version "+version+"\n", out)
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "inspect", paymentPkg)
	require.NoError(t, err)

	var exported plan.ExportedPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &exported))
	require.Len(t, exported.Enums, 4)

	method := exported.Enums[2]
	assert.Equal(t, paymentPkg+".Method", method.Type)
	assert.Equal(t, "use-name", method.Policy)
	assert.Equal(t, []string{"Cartão de crédito", "Pix", "Cash"}, method.Labels)
	assert.Equal(t, []string{"Cash=Dinheiro"}, method.Aliases)
}

func TestInspect_ConfigOverride(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "enumlabel.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
enums:
  - type: payment.Method
    policy: throw
    labels:
      Boleto: Boleto bancário
  - type: payment.Currency
    skip: true
`), 0o644))

	out, _, err := execute(t, "-c", cfg, "inspect", paymentPkg)
	require.NoError(t, err)

	var exported plan.ExportedPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &exported))
	require.Len(t, exported.Enums, 3)

	method := exported.Enums[1]
	assert.Equal(t, "throw", method.Policy)
	assert.Contains(t, method.Labels, "Boleto bancário")
}

func TestCheck_ExamplesUpToDate(t *testing.T) {
	out, _, err := execute(t, "check", paymentPkg)
	require.NoError(t, err, out)
	assert.Empty(t, out)
}

func TestGen_DryRun(t *testing.T) {
	out, _, err := execute(t, "gen", "--dry-run", paymentPkg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], filepath.Join("payment", "currency_label.go")), lines[0])
}

func TestInvalidConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "enumlabel.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("enums:\n  - type: payment.Nope\n"), 0o644))

	_, errOut, err := execute(t, "--config", cfg, "check", paymentPkg)
	require.Error(t, err)
	assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
	assert.Contains(t, errOut, "config_unknown_type")
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "inspect", paymentPkg)
	require.Error(t, err)
	assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "gen", "--bogus")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
}
