package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"enumlabel-generator/internal/common"
)

// Diagnostic codes.
const (
	CodePolicyMissing         = "policy_missing"
	CodePolicyInvalid         = "policy_invalid"
	CodeUnsupportedUnderlying = "unsupported_underlying"
	CodeNoMembers             = "no_members"
	CodeLabelMalformed        = "label_malformed"
	CodeLabelAmbiguous        = "label_ambiguous"
	CodeLabelNearDuplicate    = "label_near_duplicate"
	CodeMemberAlias           = "member_alias"
	CodeConfigUnknownType     = "config_unknown_type"
	CodeConfigUnknownMember   = "config_unknown_member"
	CodeConfigInvalidPolicy   = "config_invalid_policy"
	CodeConfigDuplicateType   = "config_duplicate_type"
	CodeConfigInvalidValue    = "config_invalid_value"
)

// Diagnostics holds all diagnostic information from analysis and resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum identifies which enum type this relates to (if any).
	Enum string
	// Member identifies which enum member this relates to (if any).
	Member string
	// Pos is the source position, "file:line:col" (if known).
	Pos string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, enum, member string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Enum: enum, Member: member})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, enum, member string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Enum: enum, Member: member})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, enum, member string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Enum: enum, Member: member})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos != "" {
		prefix = append(prefix, d.Pos)
	}

	if d.Enum != "" {
		subject := d.Enum
		if d.Member != "" {
			subject += "." + d.Member
		}

		prefix = append(prefix, "["+subject+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
