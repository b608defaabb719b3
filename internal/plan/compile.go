package plan

import (
	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/internal/common"
	"enumlabel-generator/options"
)

// Result holds the three artifacts compiled for one enum.
type Result struct {
	// Policy is the absence policy the tables were compiled with.
	Policy options.PolicyEnum
	// Labels are the distinct non-empty declared labels in declaration order.
	Labels []string
	// Forward maps member -> label.
	Forward Table
	// Reverse maps folded label -> member.
	Reverse Table
}

// Compile builds the label list and both tables in a single pass over members.
// policy must be valid.
func Compile(members []Member, policy options.PolicyEnum) Result {
	fwd := NewBuilder(Forward)
	rev := NewBuilder(Reverse)

	labels := []string{}

	for _, m := range members {
		if m.Label.State == analyze.LabelPresent && m.Label.Value != "" {
			labels = common.AppendUnique(labels, m.Label.Value)
		}

		fwd.Add(ResolveForward(m, policy))
		rev.Add(ResolveReverse(m, policy))
	}

	return Result{
		Policy:  policy,
		Labels:  labels,
		Forward: fwd.Build(),
		Reverse: rev.Build(),
	}
}

// ReverseFallback returns the value used when reverse input matches no
// specific key: the table default if one exists, otherwise a policy-derived
// value. Tables without a default occur when every member is labeled, or
// under the use-name policy; the throw policy then still reports no match.
func (r Result) ReverseFallback() Value {
	if def, ok := r.Reverse.Default(); ok {
		return def.Value
	}

	if r.Policy == options.PolicyThrow {
		return Fail(NoMatch())
	}

	return NoLabel()
}

// MembersOf converts analyzed members to compiler input, preserving order.
func MembersOf(info *analyze.EnumInfo) []Member {
	members := make([]Member, 0, len(info.Members))
	for _, m := range info.Members {
		members = append(members, Member{Name: m.Name, Label: m.Label})
	}

	return members
}
