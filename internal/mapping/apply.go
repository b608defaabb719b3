package mapping

import (
	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/options"
)

// Apply overlays the configured policies, labels and skip flags onto the
// analyzed enums. Entries that do not resolve are ignored; run Validate first
// to report them. Apply returns the number of enums it changed.
func Apply(cf *ConfigFile, graph *analyze.EnumGraph) int {
	if cf == nil || graph == nil {
		return 0
	}

	applied := 0

	for i := range cf.Enums {
		ec := &cf.Enums[i]

		info, _ := ResolveEnum(ec.Type, graph)
		if info == nil {
			continue
		}

		applyEnumConfig(ec, info)

		applied++
	}

	return applied
}

func applyEnumConfig(ec *EnumConfig, info *analyze.EnumInfo) {
	if ec.Skip {
		info.Skip = true
	}

	if ec.Policy != "" {
		if p, err := options.ParsePolicy(ec.Policy); err == nil {
			info.PolicyArg = ec.Policy
			info.Policy = p
		}
	}

	for member, lv := range ec.Labels {
		if m, ok := info.Member(member); ok {
			m.Label = lv.Declared()
		}
	}
}
