package gen

import (
	"fmt"
	"strconv"
	"strings"

	"enumlabel-generator/internal/common"
	"enumlabel-generator/internal/plan"
)

// templateData holds all data needed for the label template.
type templateData struct {
	PackageName string
	Filename    string
	Imports     []string
	TypeName    string
	LabelsVar   string
	LabelsFunc  string
	FromLabel   string
	Labels      []string // quoted
	Forward     []caseData
	Reverse     []caseData
	// Invalid is the forward return for values with no case.
	Invalid string
	// Fallback is the reverse return for input with no case.
	Fallback string

	Names localNames
}

// caseData is one switch case: the quoted or identifier match expression and
// the return expression list.
type caseData struct {
	Match  string
	Result string
}

// localNames are the identifiers the generated file declares outside package
// scope: import names, the receiver, the parameter and the named results.
type localNames struct {
	Slices  string
	Strings string
	Recv    string
	Input   string
	Result  string
	OK      string
	Err     string
	// Qual is the runtime package qualifier including the dot, or "" when the
	// enum is declared in the runtime package.
	Qual string
}

// pickNames chooses local identifiers that shadow no package-level name.
// A clashing name is prefixed with underscores until it is free.
func (g *Generator) pickNames(re *plan.ResolvedEnum) localNames {
	taken := map[string]bool{re.Info.ID.Name: true}
	for _, name := range re.Info.Scope {
		taken[name] = true
	}

	for _, m := range re.Info.Members {
		taken[m.Name] = true
	}

	pick := func(base string) string {
		name := base
		for taken[name] {
			name = "_" + name
		}

		taken[name] = true

		return name
	}

	names := localNames{
		Slices:  pick("slices"),
		Strings: pick("strings"),
		Recv:    pick("x"),
		Input:   pick("label"),
		OK:      pick("ok"),
		Err:     pick("err"),
	}
	names.Result = names.Recv

	if re.Info.ID.PkgPath != g.config.RuntimePackage {
		names.Qual = pick(common.PkgAlias(g.config.RuntimePackage)) + "."
	}

	return names
}

// importSpec renders an import line, aliased when name differs from the
// package's own name.
func importSpec(name, path string) string {
	if name == common.PkgAlias(path) {
		return strconv.Quote(path)
	}

	return name + " " + strconv.Quote(path)
}

// buildTemplateData constructs the template data from a resolved enum.
func (g *Generator) buildTemplateData(re *plan.ResolvedEnum) *templateData {
	typ := re.Info.ID.Name
	names := g.pickNames(re)

	data := &templateData{
		PackageName: re.Info.PkgName,
		Filename:    g.Filename(typ),
		Imports:     []string{importSpec(names.Slices, "slices"), importSpec(names.Strings, "strings")},
		TypeName:    typ,
		LabelsVar:   "_" + typ + "Labels",
		LabelsFunc:  typ + "Labels",
		FromLabel:   typ + "FromLabel",
		Invalid:     invalidExpr(typ, names),
		Names:       names,
	}

	if names.Qual != "" {
		data.Imports = append(data.Imports, "", importSpec(strings.TrimSuffix(names.Qual, "."), g.config.RuntimePackage))
	}

	for _, l := range re.Result.Labels {
		data.Labels = append(data.Labels, strconv.Quote(l))
	}

	for _, a := range re.Result.Forward.Entries() {
		if _, alias := re.Aliases[a.Key.Text]; alias {
			continue
		}

		data.Forward = append(data.Forward, caseData{
			Match:  a.Key.Text,
			Result: forwardResult(a.Value, typ, names),
		})
	}

	for _, a := range re.Result.Reverse.Entries() {
		data.Reverse = append(data.Reverse, caseData{
			Match:  strconv.Quote(a.Key.Text),
			Result: reverseResult(a.Value, typ, names),
		})
	}

	data.Fallback = reverseResult(re.Result.ReverseFallback(), typ, names)

	return data
}

func invalidExpr(typ string, names localNames) string {
	return fmt.Sprintf(`"", %sInvalidValue(%s, %s)`, names.Qual, strconv.Quote(typ), names.Recv)
}

func forwardResult(v plan.Value, typ string, names localNames) string {
	switch v.Kind {
	case plan.ValueLiteral:
		return strconv.Quote(v.Text) + ", nil"
	case plan.ValueFail:
		if v.Failure.Kind == plan.FailureNoMatch {
			return invalidExpr(typ, names)
		}

		return `"", ` + failureExpr(v.Failure, typ, names)
	default:
		return `"", nil`
	}
}

func reverseResult(v plan.Value, typ string, names localNames) string {
	switch v.Kind {
	case plan.ValueMember:
		return v.Text + ", true, nil"
	case plan.ValueFail:
		return names.Result + ", false, " + failureExpr(v.Failure, typ, names)
	default:
		return names.Result + ", false, nil"
	}
}

// failureExpr renders the error value for a failure.
func failureExpr(f plan.Failure, typ string, names localNames) string {
	switch f.Kind {
	case plan.FailureMissingLabel:
		return fmt.Sprintf("&%sMissingLabelError{Type: %s, Member: %s}",
			names.Qual, strconv.Quote(typ), strconv.Quote(f.Subject))
	case plan.FailureAmbiguousLabel:
		return fmt.Sprintf("&%sAmbiguousLabelError{Type: %s, Label: %s}",
			names.Qual, strconv.Quote(typ), strconv.Quote(f.Subject))
	default:
		return fmt.Sprintf("&%sNoMatchError{Type: %s, Label: %s}",
			names.Qual, strconv.Quote(typ), names.Input)
	}
}
