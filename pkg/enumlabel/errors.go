// Package enumlabel holds the errors returned by code generated by
// enumlabel-generator. Generated Label and FromLabel functions return these
// values instead of panicking, so callers can match them with errors.Is and
// errors.As.
package enumlabel

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrMissingLabel   = errors.New("missing label")
	ErrNoMatch        = errors.New("no matching member")
	ErrAmbiguousLabel = errors.New("ambiguous label")
	ErrInvalidValue   = errors.New("invalid enum value")
)

// MissingLabelError is returned by Label for a member declared without a
// label when the enum uses the throw policy.
type MissingLabelError struct {
	Type   string
	Member string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("label for member %s not found", e.Member)
}

// Is reports whether target is ErrMissingLabel.
func (e *MissingLabelError) Is(target error) bool { return target == ErrMissingLabel }

// NoMatchError is returned by FromLabel when the input matches no member.
type NoMatchError struct {
	Type  string
	Label string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no member for label '%s'", e.Label)
}

// Is reports whether target is ErrNoMatch.
func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// AmbiguousLabelError is returned by FromLabel when several members declare
// labels that are equal ignoring case. Label is the folded, shared label.
type AmbiguousLabelError struct {
	Type  string
	Label string
}

func (e *AmbiguousLabelError) Error() string {
	return fmt.Sprintf("multiple members found for label '%s'", e.Label)
}

// Is reports whether target is ErrAmbiguousLabel.
func (e *AmbiguousLabelError) Is(target error) bool { return target == ErrAmbiguousLabel }

// InvalidValueError is returned by Label for values that are not declared
// members of the enum type.
type InvalidValueError struct {
	Type  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s is not a declared %s member", e.Value, e.Type)
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// InvalidValue builds an InvalidValueError. The value is printed with %#v so
// that a String method defined on the enum is not consulted.
func InvalidValue(typ string, v any) error {
	return &InvalidValueError{Type: typ, Value: fmt.Sprintf("%#v", v)}
}
