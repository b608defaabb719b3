package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a scalar label. Null values never reach this method;
// yaml.v3 stores the zero LabelValue for them.
func (l *LabelValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: label must be a string", node.Line)
	}

	*l = Label(node.Value)

	return nil
}

// MarshalYAML writes null for a cleared label.
func (l LabelValue) MarshalYAML() (any, error) {
	if !l.Set {
		return nil, nil
	}

	return l.Value, nil
}
