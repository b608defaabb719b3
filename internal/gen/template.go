package gen

import (
	"strings"
	"text/template"
)

var labelTemplate = template.Must(template.New("label").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`// Code generated by enumlabel-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
{{- if .}}
	{{.}}
{{- else}}
{{end}}
{{- end}}
)

var {{.LabelsVar}} = []string{ {{- join .Labels ", " -}} }

// {{.LabelsFunc}} returns the labels declared for {{.TypeName}} members, in declaration order.
func {{.LabelsFunc}}() []string {
	return {{.Names.Slices}}.Clone({{.LabelsVar}})
}

// Label returns the label of {{.Names.Recv}}.
func ({{.Names.Recv}} {{.TypeName}}) Label() (string, error) {
	switch {{.Names.Recv}} {
{{- range .Forward}}
	case {{.Match}}:
		return {{.Result}}
{{- end}}
	}

	return {{.Invalid}}
}

// {{.FromLabel}} returns the {{.TypeName}} member whose label equals {{.Names.Input}}, ignoring case.
func {{.FromLabel}}({{.Names.Input}} string) ({{.Names.Result}} {{.TypeName}}, {{.Names.OK}} bool, {{.Names.Err}} error) {
	switch {{.Names.Strings}}.ToLower({{.Names.Input}}) {
{{- range .Reverse}}
	case {{.Match}}:
		return {{.Result}}
{{- end}}
	}

	return {{.Fallback}}
}
`))
