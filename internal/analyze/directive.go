package analyze

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"
)

const (
	directivePrefix = "//enumlabel:"

	// GenerateDirective marks a type for generation: //enumlabel:generate policy=ignore
	GenerateDirective = "generate"
	// LabelDirective declares a member label: //enumlabel:label "Credit card"
	LabelDirective = "label"
)

// Directive is one parsed //enumlabel: comment.
type Directive struct {
	Name string
	// Arg is the trimmed text after the directive name.
	Arg string
}

// ParseDirective parses a single raw comment. Directives follow the Go
// convention: no space between "//" and the directive name.
func ParseDirective(text string) (Directive, bool) {
	rest, ok := strings.CutPrefix(text, directivePrefix)
	if !ok {
		return Directive{}, false
	}

	name, arg := rest, ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		name, arg = rest[:i], rest[i+1:]
	}

	if name == "" {
		return Directive{}, false
	}

	return Directive{Name: name, Arg: strings.TrimSpace(arg)}, true
}

// FindDirective returns the first directive with the given name in the comment groups.
func FindDirective(name string, groups ...*ast.CommentGroup) (Directive, bool) {
	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			if d, ok := ParseDirective(c.Text); ok && d.Name == name {
				return d, true
			}
		}
	}

	return Directive{}, false
}

// PolicyArg extracts the policy selector from a generate directive argument.
// Both "policy=throw" and "throw" are accepted; other key=value pairs are ignored.
func PolicyArg(arg string) string {
	fields := strings.Fields(arg)
	for _, f := range fields {
		if v, ok := strings.CutPrefix(f, "policy="); ok {
			return strings.Trim(v, `"`)
		}
	}

	for _, f := range fields {
		if !strings.Contains(f, "=") {
			return f
		}
	}

	return ""
}

// ParseLabel converts a label directive argument into a DeclaredLabel.
// No argument yields Empty; a Go string literal is unquoted and anything
// after it is ignored; other text is taken verbatim.
func ParseLabel(arg string) (DeclaredLabel, error) {
	if arg == "" {
		return Empty(), nil
	}

	if arg[0] == '"' || arg[0] == '`' {
		lit, err := strconv.QuotedPrefix(arg)
		if err != nil {
			return Empty(), fmt.Errorf("invalid label literal %s: %w", arg, err)
		}

		v, err := strconv.Unquote(lit)
		if err != nil {
			return Empty(), fmt.Errorf("invalid label literal %s: %w", lit, err)
		}

		return Present(v), nil
	}

	return Present(arg), nil
}
