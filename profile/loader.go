package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"beanmapper/beancopy"
)

// LoadFile loads and parses a profile file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional settings.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Profiles {
		f.Profiles[i].applyDefaults()
	}
}

func (p *Profile) applyDefaults() {
	if p.BeanDelimiter == "" {
		p.BeanDelimiter = string(beancopy.DefaultBeanDelimiter)
	}
	if p.MapDelimiter == "" {
		p.MapDelimiter = string(beancopy.DefaultMapDelimiter)
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}

	return nil
}
