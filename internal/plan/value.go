package plan

import (
	"fmt"
	"strconv"

	"enumlabel-generator/internal/common"
)

// Direction identifies which lookup a table serves.
type Direction int

const (
	// Forward maps a member to its label.
	Forward Direction = iota
	// Reverse maps a label to its member.
	Reverse
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return common.UnknownStr
	}
}

// Key is the left-hand side of a table association. The wildcard key is a
// flag rather than a reserved spelling, so a label written "_" is an ordinary key.
type Key struct {
	Wildcard bool
	Text     string
}

// TextKey returns a specific key.
func TextKey(text string) Key {
	return Key{Text: text}
}

// WildcardKey returns the default key, matched when no specific key does.
func WildcardKey() Key {
	return Key{Wildcard: true}
}

// String returns "_" for the wildcard and the quoted text otherwise.
func (k Key) String() string {
	if k.Wildcard {
		return "_"
	}

	return strconv.Quote(k.Text)
}

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueUnknown ValueKind = iota
	ValueLiteral           // label text, forward tables only
	ValueMember            // member name, reverse tables only
	ValueNoLabel           // empty result, not an error
	ValueFail              // deferred failure
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueLiteral:
		return "literal"
	case ValueMember:
		return "member"
	case ValueNoLabel:
		return "no_label"
	case ValueFail:
		return "fail"
	default:
		return common.UnknownStr
	}
}

// FailureKind classifies a deferred failure.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	// FailureMissingLabel: the member has no label under the throw policy.
	FailureMissingLabel
	// FailureNoMatch: the lookup input matched no member.
	FailureNoMatch
	// FailureAmbiguousLabel: several members share a label ignoring case.
	FailureAmbiguousLabel
)

// String returns a human-readable failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureMissingLabel:
		return "missing_label"
	case FailureNoMatch:
		return "no_match"
	case FailureAmbiguousLabel:
		return "ambiguous_label"
	default:
		return common.UnknownStr
	}
}

// Failure is a failure encoded as data. Subject is the member name for
// FailureMissingLabel and the folded label for FailureAmbiguousLabel; the
// no-match subject is the lookup input and is only known at lookup time.
type Failure struct {
	Kind    FailureKind
	Subject string
}

// MissingLabel returns the failure for a member without a label.
func MissingLabel(member string) Failure {
	return Failure{Kind: FailureMissingLabel, Subject: member}
}

// NoMatch returns the failure for lookup input that matched nothing.
func NoMatch() Failure {
	return Failure{Kind: FailureNoMatch}
}

// AmbiguousLabel returns the failure for a label claimed by several members.
func AmbiguousLabel(label string) Failure {
	return Failure{Kind: FailureAmbiguousLabel, Subject: label}
}

// Message renders the failure text. input is only used by FailureNoMatch.
func (f Failure) Message(input string) string {
	switch f.Kind {
	case FailureMissingLabel:
		return fmt.Sprintf("label for member %s not found", f.Subject)
	case FailureNoMatch:
		return fmt.Sprintf("no member for label '%s'", input)
	case FailureAmbiguousLabel:
		return fmt.Sprintf("multiple members found for label '%s'", f.Subject)
	default:
		return "unknown failure"
	}
}

// Value is the right-hand side of a table association.
type Value struct {
	Kind ValueKind
	// Text is the label for ValueLiteral and the member name for ValueMember.
	Text string
	// Failure is set for ValueFail.
	Failure Failure
}

// Literal returns a label value.
func Literal(text string) Value {
	return Value{Kind: ValueLiteral, Text: text}
}

// MemberValue returns a value selecting the named member.
func MemberValue(name string) Value {
	return Value{Kind: ValueMember, Text: name}
}

// NoLabel returns the empty result.
func NoLabel() Value {
	return Value{Kind: ValueNoLabel}
}

// Fail returns a deferred failure.
func Fail(f Failure) Value {
	return Value{Kind: ValueFail, Failure: f}
}

// String returns a compact description used in diagnostics and exports.
func (v Value) String() string {
	switch v.Kind {
	case ValueLiteral:
		return strconv.Quote(v.Text)
	case ValueMember:
		return v.Text
	case ValueNoLabel:
		return "<no label>"
	case ValueFail:
		if v.Failure.Subject == "" {
			return "fail(" + v.Failure.Kind.String() + ")"
		}

		return "fail(" + v.Failure.Kind.String() + ": " + v.Failure.Subject + ")"
	default:
		return common.UnknownStr
	}
}

// Association is one (key -> value) entry of a table.
type Association struct {
	Key   Key
	Value Value
	// Collision is set once a second member claimed an equivalent key.
	Collision bool
}
