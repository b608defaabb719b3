package plan

import (
	"fmt"

	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/internal/match"
	"enumlabel-generator/options"
)

// Member is one enum member as seen by the compiler.
type Member struct {
	Name  string
	Label analyze.DeclaredLabel
}

// ResolveForward returns the forward association fact for m: the key is
// always the member itself.
func ResolveForward(m Member, policy options.PolicyEnum) (Key, Value) {
	key := TextKey(m.Name)

	if m.Label.State == analyze.LabelPresent {
		return key, Literal(m.Label.Value)
	}

	switch policy {
	case options.PolicyIgnore:
		return key, NoLabel()
	case options.PolicyThrow:
		return key, Fail(MissingLabel(m.Name))
	case options.PolicyUseName:
		return key, Literal(m.Name)
	default:
		panic(fmt.Sprintf("plan: invalid absence policy %v", policy))
	}
}

// ResolveReverse returns the reverse association fact for m. Members without
// a label contribute the default entry unless the policy labels them with
// their own name.
func ResolveReverse(m Member, policy options.PolicyEnum) (Key, Value) {
	if m.Label.State == analyze.LabelPresent {
		return TextKey(match.FoldLabel(m.Label.Value)), MemberValue(m.Name)
	}

	switch policy {
	case options.PolicyIgnore:
		return WildcardKey(), NoLabel()
	case options.PolicyThrow:
		return WildcardKey(), Fail(NoMatch())
	case options.PolicyUseName:
		return TextKey(match.FoldLabel(m.Name)), MemberValue(m.Name)
	default:
		panic(fmt.Sprintf("plan: invalid absence policy %v", policy))
	}
}
