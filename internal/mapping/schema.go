package mapping

import (
	"enumlabel-generator/internal/analyze"
	"enumlabel-generator/internal/gen"
)

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = "enumlabel.yaml"

// CurrentVersion is the only supported schema version.
const CurrentVersion = "1"

// ConfigFile represents the root of a YAML configuration file.
type ConfigFile struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Suffix is appended to the snake-cased type name of each output file.
	Suffix string `yaml:"suffix,omitempty"`

	// RuntimePackage is the import path of the error package used by generated code.
	RuntimePackage string `yaml:"runtime_package,omitempty"`

	// Workers bounds concurrent rendering. Zero means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`

	// DebugUnformatted writes a sidecar with the raw output when formatting fails.
	DebugUnformatted bool `yaml:"debug_unformatted,omitempty"`

	// BuildTags are passed to the package loader.
	BuildTags []string `yaml:"build_tags,omitempty"`

	// Enums holds per-enum overrides.
	Enums []EnumConfig `yaml:"enums,omitempty"`
}

// EnumConfig overrides the directives of one enum type.
type EnumConfig struct {
	// Type identifier (e.g., "payment.Method" or full path).
	Type string `yaml:"type"`

	// Policy is an absence policy name or number; empty keeps the directive's.
	Policy string `yaml:"policy,omitempty"`

	// Labels maps member names to label overrides.
	Labels map[string]LabelValue `yaml:"labels,omitempty"`

	// Skip excludes the enum from generation.
	Skip bool `yaml:"skip,omitempty"`
}

// LabelValue is a label override. A YAML null clears the label.
type LabelValue struct {
	Set   bool
	Value string
}

// Label returns a LabelValue holding v.
func Label(v string) LabelValue {
	return LabelValue{Set: true, Value: v}
}

// Declared converts the override into a declared label.
func (l LabelValue) Declared() analyze.DeclaredLabel {
	if !l.Set {
		return analyze.Empty()
	}

	return analyze.Present(l.Value)
}

// GeneratorConfig returns the generator settings of the file.
func (cf *ConfigFile) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()

	if cf == nil {
		return cfg
	}

	if cf.Suffix != "" {
		cfg.Suffix = cf.Suffix
	}

	if cf.RuntimePackage != "" {
		cfg.RuntimePackage = cf.RuntimePackage
	}

	if cf.Workers > 0 {
		cfg.Workers = cf.Workers
	}

	cfg.DebugUnformatted = cf.DebugUnformatted

	return cfg
}
