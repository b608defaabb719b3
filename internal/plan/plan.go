package plan

import (
	"fmt"
	"sort"
	"strings"

	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/internal/common"
	"enumlabel-generator/internal/diagnostic"
	"enumlabel-generator/internal/match"
	"enumlabel-generator/pkg/enumlabel"
)

// nearDuplicateDistance is the edit distance under which two distinct labels
// are reported as a likely typo.
const nearDuplicateDistance = 1

// ResolvedPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedPlan struct {
	// Enums are the compiled enums ordered by package path, then type name.
	Enums []ResolvedEnum
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedEnum pairs an analyzed enum with its compiled tables.
type ResolvedEnum struct {
	Info   *analyze.EnumInfo
	Result Result
	// Aliases maps a member to the earlier member declared with the same
	// constant value. Aliases cannot have their own case in a Go switch.
	Aliases map[string]string
}

// Resolve compiles every enabled enum. Enums whose policy is still unset or
// invalid are skipped with a warning.
func Resolve(enums []*analyze.EnumInfo) *ResolvedPlan {
	p := &ResolvedPlan{}

	sorted := make([]*analyze.EnumInfo, len(enums))
	copy(sorted, enums)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	for _, info := range sorted {
		if info.Skip {
			continue
		}

		name := info.ID.String()

		if !info.Policy.IsValid() {
			if info.PolicyArg == "" {
				p.Diagnostics.AddWarning(diagnostic.CodePolicyMissing,
					"enum skipped: generate directive has no policy", name, "")
			} else {
				p.Diagnostics.AddWarning(diagnostic.CodePolicyInvalid,
					fmt.Sprintf("enum skipped: invalid policy %q", info.PolicyArg), name, "")
			}

			continue
		}

		if common.IsEmpty(info.Members) {
			p.Diagnostics.AddWarning(diagnostic.CodeNoMembers, "enum has no members", name, "")
		}

		re := ResolvedEnum{
			Info:    info,
			Result:  Compile(MembersOf(info), info.Policy),
			Aliases: findAliases(info, &p.Diagnostics),
		}

		for _, c := range re.Result.Reverse.Collisions() {
			p.Diagnostics.AddWarning(diagnostic.CodeLabelAmbiguous,
				fmt.Sprintf("label %q is declared by several members; reverse lookup will fail", c.Value.Failure.Subject),
				name, "")
		}

		for _, np := range match.NearDuplicates(re.Result.Labels, nearDuplicateDistance) {
			p.Diagnostics.AddInfo(diagnostic.CodeLabelNearDuplicate,
				fmt.Sprintf("labels %q and %q differ by %d edit (%.0f%% similar)",
					np.A, np.B, np.Distance, 100*match.LevenshteinNormalized(match.FoldLabel(np.A), match.FoldLabel(np.B))),
				name, "")
		}

		p.Enums = append(p.Enums, re)
	}

	return p
}

func findAliases(info *analyze.EnumInfo, diags *diagnostic.Diagnostics) map[string]string {
	aliases := make(map[string]string)
	first := make(map[string]string)

	for _, m := range info.Members {
		if m.ConstValue == "" {
			continue
		}

		if orig, ok := first[m.ConstValue]; ok {
			aliases[m.Name] = orig
			diags.AddWarning(diagnostic.CodeMemberAlias,
				fmt.Sprintf("member has the same value as %s; Label reports %s's label", orig, orig),
				info.ID.String(), m.Name)

			continue
		}

		first[m.ConstValue] = m.Name
	}

	return aliases
}

// LabelOf evaluates the forward table the way generated Label methods do.
func (re ResolvedEnum) LabelOf(member string) (string, error) {
	typ := re.Info.ID.Name

	if orig, ok := re.Aliases[member]; ok {
		member = orig
	}

	a, ok := re.Result.Forward.Lookup(member)
	if !ok {
		return "", enumlabel.InvalidValue(typ, member)
	}

	switch a.Value.Kind {
	case ValueLiteral:
		return a.Value.Text, nil
	case ValueFail:
		return "", failureError(typ, a.Value.Failure, member)
	default:
		return "", nil
	}
}

// MemberOf evaluates the reverse table the way generated FromLabel functions do.
func (re ResolvedEnum) MemberOf(label string) (string, bool, error) {
	v := re.Result.ReverseFallback()
	if a, ok := re.Result.Reverse.Lookup(label); ok {
		v = a.Value
	}

	switch v.Kind {
	case ValueMember:
		return v.Text, true, nil
	case ValueFail:
		return "", false, failureError(re.Info.ID.Name, v.Failure, label)
	default:
		return "", false, nil
	}
}

func failureError(typ string, f Failure, input string) error {
	switch f.Kind {
	case FailureMissingLabel:
		return &enumlabel.MissingLabelError{Type: typ, Member: f.Subject}
	case FailureAmbiguousLabel:
		return &enumlabel.AmbiguousLabelError{Type: typ, Label: f.Subject}
	default:
		return &enumlabel.NoMatchError{Type: typ, Label: input}
	}
}

// Summary returns a one-line description used in logs.
func (re ResolvedEnum) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s policy=%s members=%d labels=%d",
		re.Info.ID, re.Result.Policy, len(re.Info.Members), len(re.Result.Labels))

	if n := len(re.Result.Reverse.Collisions()); n > 0 {
		fmt.Fprintf(&b, " collisions=%d", n)
	}

	return b.String()
}
