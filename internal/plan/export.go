package plan

import (
	"gopkg.in/yaml.v3"
)

// ExportedPlan is the YAML view of a resolved plan.
type ExportedPlan struct {
	Enums []ExportedEnum `yaml:"enums"`
}

// ExportedEnum is the YAML view of one compiled enum.
type ExportedEnum struct {
	Type    string          `yaml:"type"`
	Policy  string          `yaml:"policy"`
	Labels  []string        `yaml:"labels"`
	Forward []ExportedEntry `yaml:"forward"`
	Reverse []ExportedEntry `yaml:"reverse"`
	Aliases []string        `yaml:"aliases,omitempty"`
}

// ExportedEntry is one association; the default entry has key "_" and
// Default set.
type ExportedEntry struct {
	Key       string `yaml:"key"`
	Value     string `yaml:"value"`
	Default   bool   `yaml:"default,omitempty"`
	Collision bool   `yaml:"collision,omitempty"`
}

// Export converts a resolved plan into its exported form.
func Export(p *ResolvedPlan) *ExportedPlan {
	out := &ExportedPlan{Enums: make([]ExportedEnum, 0, len(p.Enums))}

	for _, re := range p.Enums {
		ee := ExportedEnum{
			Type:    re.Info.ID.String(),
			Policy:  re.Result.Policy.String(),
			Labels:  re.Result.Labels,
			Forward: exportTable(re.Result.Forward),
			Reverse: exportTable(re.Result.Reverse),
		}

		for _, m := range re.Info.Members {
			if orig, ok := re.Aliases[m.Name]; ok {
				ee.Aliases = append(ee.Aliases, m.Name+"="+orig)
			}
		}

		out.Enums = append(out.Enums, ee)
	}

	return out
}

func exportTable(t Table) []ExportedEntry {
	entries := make([]ExportedEntry, 0, len(t.Associations))

	for _, a := range t.Associations {
		key := a.Key.Text
		if a.Key.Wildcard {
			key = "_"
		}

		entries = append(entries, ExportedEntry{
			Key:       key,
			Value:     a.Value.String(),
			Default:   a.Key.Wildcard,
			Collision: a.Collision,
		})
	}

	return entries
}

// ExportYAML renders a resolved plan as YAML.
func ExportYAML(p *ResolvedPlan) ([]byte, error) {
	return yaml.Marshal(Export(p))
}
