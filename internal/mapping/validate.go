package mapping

import (
	"fmt"

	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/internal/diagnostic"
	"enumlabel-generator/options"
)

// Validate validates a configuration file against the given enum graph.
func Validate(cf *ConfigFile, graph *analyze.EnumGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("config_is_nil", "configuration file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "enum graph is nil", "", "")
		return res
	}

	if cf.Workers < 0 {
		res.AddError(diagnostic.CodeConfigInvalidValue,
			fmt.Sprintf("workers must not be negative, got %d", cf.Workers), "", "")
	}

	seen := map[analyze.TypeID]string{}

	for i := range cf.Enums {
		ec := &cf.Enums[i]

		info, n := ResolveEnum(ec.Type, graph)
		if info == nil {
			msg := fmt.Sprintf("type %q not found", ec.Type)
			if n > 1 {
				msg = fmt.Sprintf("type %q is ambiguous (%d matches); use the full import path", ec.Type, n)
			}

			res.AddError(diagnostic.CodeConfigUnknownType, msg, ec.Type, "")

			continue
		}

		if prev, ok := seen[info.ID]; ok {
			res.AddError(diagnostic.CodeConfigDuplicateType,
				fmt.Sprintf("type configured twice (as %q and %q)", prev, ec.Type), info.ID.String(), "")

			continue
		}

		seen[info.ID] = ec.Type

		validateEnumConfig(res, ec, info)
	}

	return res
}

func validateEnumConfig(res *diagnostic.Diagnostics, ec *EnumConfig, info *analyze.EnumInfo) {
	name := info.ID.String()

	if ec.Policy != "" {
		if _, err := options.ParsePolicy(ec.Policy); err != nil {
			res.AddError(diagnostic.CodeConfigInvalidPolicy, err.Error(), name, "")
		}
	} else if !ec.Skip && !info.HasDirective {
		res.AddWarning(diagnostic.CodePolicyMissing,
			"type has no generate directive and no policy; it will not be generated", name, "")
	}

	for member := range ec.Labels {
		if _, ok := info.Member(member); !ok {
			res.AddError(diagnostic.CodeConfigUnknownMember,
				fmt.Sprintf("member %q not found", member), name, member)
		}
	}
}
