package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumlabel-generator/internal/diagnostic"
	"enumlabel-generator/options"
)

const paymentPkg = "enumlabel-generator/examples/payment"

func loadPayment(t *testing.T) (*Analyzer, *EnumGraph) {
	t.Helper()

	analyzer := NewAnalyzer(Config{}, nil)
	graph, err := analyzer.LoadPackages(context.Background(), paymentPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return analyzer, graph
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer, graph := loadPayment(t)

	assert.Contains(t, graph.Packages, paymentPkg)
	assert.Len(t, graph.Selected(), 4)
	diags := analyzer.Diagnostics()
	assert.True(t, diags.IsValid())

	for _, name := range []string{"Method", "StrictMethod", "LenientMethod", "Currency"} {
		info := graph.GetEnum(TypeID{PkgPath: paymentPkg, Name: name})
		require.NotNil(t, info, name)
		assert.True(t, info.HasDirective, name)
		assert.Equal(t, "payment", info.PkgName)
		assert.NotEmpty(t, info.Dir)
	}
}

func TestAnalyzer_MethodMembers(t *testing.T) {
	_, graph := loadPayment(t)

	method := graph.GetEnum(TypeID{PkgPath: paymentPkg, Name: "Method"})
	require.NotNil(t, method)

	assert.Equal(t, options.PolicyUseName, method.Policy)
	assert.Equal(t, "use-name", method.PolicyArg)
	assert.Equal(t, "int", method.Underlying)

	var names []string
	for _, m := range method.Members {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{"Credit", "Pix", "Debit", "Boleto", "Dinheiro", "Cash"}, names)
	assert.Subset(t, method.Scope, append(names, "Method", "Currency", "MethodLabels"))

	credit, ok := method.Member("Credit")
	require.True(t, ok)
	assert.Equal(t, Present("Cartão de crédito"), credit.Label)
	assert.Equal(t, "1", credit.ConstValue)

	pix, _ := method.Member("Pix")
	assert.Equal(t, Present("Pix"), pix.Label)

	debit, _ := method.Member("Debit")
	assert.Equal(t, Empty(), debit.Label)

	boleto, _ := method.Member("Boleto")
	assert.Equal(t, Absent(), boleto.Label)

	dinheiro, _ := method.Member("Dinheiro")
	cash, _ := method.Member("Cash")
	assert.Equal(t, dinheiro.ConstValue, cash.ConstValue)
	assert.Equal(t, Present("Cash"), cash.Label)
}

func TestAnalyzer_StringEnum(t *testing.T) {
	_, graph := loadPayment(t)

	currency := graph.GetEnum(TypeID{PkgPath: paymentPkg, Name: "Currency"})
	require.NotNil(t, currency)

	assert.Equal(t, "string", currency.Underlying)
	assert.Equal(t, options.PolicyThrow, currency.Policy)
	require.Len(t, currency.Members, 3)
	assert.Equal(t, `"BRL"`, currency.Members[0].ConstValue)
	assert.Equal(t, Present("Euro"), currency.Members[2].Label)
}

func TestAnalyzer_Fixture(t *testing.T) {
	dir := writeFixture(t, `package fixture

//enumlabel:generate
type NoPolicy int

const (
	A NoPolicy = iota
	_
	B
)

//enumlabel:generate policy=bogus
type BadPolicy int

const X BadPolicy = 1

//enumlabel:generate throw
type Floaty float64

//enumlabel:generate 3
type Broken int

const (
	//enumlabel:label "oops
	P Broken = iota
	Q
)

type Plain string

const (
	PlainA Plain = "a"
)

type Unused int
`)

	analyzer := NewAnalyzer(Config{Dir: dir}, nil)
	graph, err := analyzer.LoadPackages(context.Background(), ".")
	require.NoError(t, err)

	noPolicy := graph.GetEnum(TypeID{PkgPath: "fixture", Name: "NoPolicy"})
	require.NotNil(t, noPolicy)
	assert.False(t, noPolicy.Policy.IsValid())
	assert.Empty(t, noPolicy.PolicyArg)
	require.Len(t, noPolicy.Members, 2)
	assert.Equal(t, "B", noPolicy.Members[1].Name)

	bad := graph.GetEnum(TypeID{PkgPath: "fixture", Name: "BadPolicy"})
	require.NotNil(t, bad)
	assert.Equal(t, "bogus", bad.PolicyArg)
	assert.False(t, bad.Policy.IsValid())

	broken := graph.GetEnum(TypeID{PkgPath: "fixture", Name: "Broken"})
	require.NotNil(t, broken)
	assert.Equal(t, options.PolicyUseName, broken.Policy)
	assert.Equal(t, Empty(), broken.Members[0].Label)

	plain := graph.GetEnum(TypeID{PkgPath: "fixture", Name: "Plain"})
	require.NotNil(t, plain)
	assert.False(t, plain.HasDirective)

	assert.Nil(t, graph.GetEnum(TypeID{PkgPath: "fixture", Name: "Floaty"}))
	assert.Nil(t, graph.GetEnum(TypeID{PkgPath: "fixture", Name: "Unused"}))

	diags := analyzer.Diagnostics()
	require.Len(t, diags.Errors, 2)

	codes := []string{diags.Errors[0].Code, diags.Errors[1].Code}
	assert.ElementsMatch(t, []string{diagnostic.CodeUnsupportedUnderlying, diagnostic.CodeLabelMalformed}, codes)

	for _, d := range diags.Errors {
		if d.Code == diagnostic.CodeLabelMalformed {
			assert.Equal(t, "P", d.Member)
			assert.Contains(t, d.Pos, "fixture.go")
		}
	}
}

func TestAnalyzer_PackageErrors(t *testing.T) {
	dir := writeFixture(t, "package fixture\n\nvar x int = \"no\"\n")

	_, err := NewAnalyzer(Config{Dir: dir}, nil).LoadPackages(context.Background(), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package errors")
}

func TestAnalyzer_StaleGeneratedFile(t *testing.T) {
	dir := writeFixtureFiles(t, map[string]string{
		"fixture.go": `package fixture

//enumlabel:generate throw
type Status int

const (
	//enumlabel:label "on"
	On Status = iota + 1
)
`,
		// Refers to a member that no longer exists.
		"status_label.go": `package fixture

func (x Status) Label() string {
	switch x {
	case Gone:
		return "gone"
	}

	return ""
}
`,
	})

	_, err := NewAnalyzer(Config{Dir: dir}, nil).LoadPackages(context.Background(), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gone")

	graph, err := NewAnalyzer(Config{Dir: dir, GeneratedSuffix: "_label.go"}, nil).LoadPackages(context.Background(), ".")
	require.NoError(t, err)

	status := graph.GetEnum(TypeID{PkgPath: "fixture", Name: "Status"})
	require.NotNil(t, status)
	require.Len(t, status.Members, 1)
	assert.Equal(t, Present("on"), status.Members[0].Label)
}

func TestAnalyzer_StaleSuffixKeepsOtherErrors(t *testing.T) {
	dir := writeFixtureFiles(t, map[string]string{
		"fixture.go":      "package fixture\n\nvar y int = \"no\"\n",
		"status_label.go": "package fixture\n\nvar z = Gone\n",
	})

	_, err := NewAnalyzer(Config{Dir: dir, GeneratedSuffix: "_label.go"}, nil).LoadPackages(context.Background(), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixture.go")
	assert.NotContains(t, err.Error(), "Gone")
}

func TestErrorFile(t *testing.T) {
	tests := []struct {
		pos  string
		want string
	}{
		{"/src/status_label.go:12:3", "/src/status_label.go"},
		{"/src/status_label.go:12", "/src/status_label.go"},
		{"C:/src/a.go:1:2", "C:/src/a.go"},
		{"-", "-"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errorFile(tt.pos), tt.pos)
	}
}

func writeFixture(t *testing.T, src string) string {
	t.Helper()

	return writeFixtureFiles(t, map[string]string{"fixture.go": src})
}

func writeFixtureFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module fixture\n\ngo 1.24\n"), 0o644))

	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}

	return dir
}
