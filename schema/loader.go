package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML shape declaration from the given path.
func LoadFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Schema{}, fmt.Errorf("schema file %s: %w", path, err)
	}

	return s, nil
}

// Parse parses YAML data into a Schema and runs structural validation.
func Parse(data []byte) (Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	if diag := Validate(s); !diag.IsValid() {
		return Schema{}, diag.Error()
	}

	return s, nil
}

// Marshal serializes a Schema to YAML.
func Marshal(s Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Schema declaration to the given path.
func WriteFile(s Schema, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
