package config

import (
	"fmt"
	"os"
)

// LoadInstance loads and parses an instance file.
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance file %s: %w", path, err)
	}
	in, err := ParseInstanceYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance file %s: %w", path, err)
	}
	return in, nil
}
