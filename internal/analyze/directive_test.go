package analyze

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		text   string
		want   Directive
		wantOK bool
	}{
		{"//enumlabel:generate policy=throw", Directive{Name: "generate", Arg: "policy=throw"}, true},
		{"//enumlabel:label", Directive{Name: "label"}, true},
		{"//enumlabel:label\t\"Pix\" ", Directive{Name: "label", Arg: `"Pix"`}, true},
		{"// enumlabel:label \"Pix\"", Directive{}, false},
		{"//enumlabel:", Directive{}, false},
		{"//go:generate stringer", Directive{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseDirective(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindDirective(t *testing.T) {
	doc := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Method is a payment method."},
		{Text: "//enumlabel:label first"},
		{Text: "//enumlabel:label second"},
	}}

	d, ok := FindDirective(LabelDirective, nil, doc)
	require.True(t, ok)
	assert.Equal(t, "first", d.Arg)

	_, ok = FindDirective(GenerateDirective, doc)
	assert.False(t, ok)
}

func TestPolicyArg(t *testing.T) {
	assert.Equal(t, "throw", PolicyArg("policy=throw"))
	assert.Equal(t, "use-name", PolicyArg(`policy="use-name"`))
	assert.Equal(t, "ignore", PolicyArg("ignore"))
	assert.Equal(t, "2", PolicyArg("other=x 2"))
	assert.Empty(t, PolicyArg(""))
	assert.Empty(t, PolicyArg("other=x"))
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    DeclaredLabel
		wantErr bool
	}{
		{"no argument", "", Empty(), false},
		{"quoted", `"Cartão de crédito"`, Present("Cartão de crédito"), false},
		{"quoted empty", `""`, Present(""), false},
		{"raw string", "`a \"b\"`", Present(`a "b"`), false},
		{"escape", `"tab\there"`, Present("tab\there"), false},
		{"trailing text ignored", `"Pix" // instant`, Present("Pix"), false},
		{"bare text", "Euro", Present("Euro"), false},
		{"bare underscore", "_", Present("_"), false},
		{"unterminated", `"Pix`, Empty(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabel(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
