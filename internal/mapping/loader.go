package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion is returned for configuration files of an unknown schema version.
var ErrUnsupportedVersion = errors.New("unsupported configuration version")

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	cf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cf, nil
}

// Parse parses YAML data into a ConfigFile. Unknown keys are rejected.
func Parse(data []byte) (*ConfigFile, error) {
	var cf ConfigFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cf)

	if cf.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, cf.Version)
	}

	return &cf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *ConfigFile) {
	if cf.Version == "" {
		cf.Version = CurrentVersion
	}

	def := cf.GeneratorConfig()
	if cf.Suffix == "" {
		cf.Suffix = def.Suffix
	}

	if cf.RuntimePackage == "" {
		cf.RuntimePackage = def.RuntimePackage
	}
}

// Marshal serializes a ConfigFile to YAML.
func Marshal(cf *ConfigFile) ([]byte, error) {
	return yaml.Marshal(cf)
}

// WriteFile writes a ConfigFile to the given path.
func WriteFile(cf *ConfigFile, path string) error {
	data, err := Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}

	return nil
}
