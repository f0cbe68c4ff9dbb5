package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseInstanceYAML parses an Instance from YAML bytes and validates it.
// This is used for APIs where the instance arrives as payload (not via
// filesystem).
func ParseInstanceYAML(data []byte) (*Instance, error) {
	var in Instance
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse instance yaml: %w", err)
	}

	if err := validateInstance(&in); err != nil {
		return nil, fmt.Errorf("invalid instance: %w", err)
	}

	return &in, nil
}

// ParseInstanceYAMLString parses an Instance from a YAML string and
// validates it.
func ParseInstanceYAMLString(yamlText string) (*Instance, error) {
	return ParseInstanceYAML([]byte(yamlText))
}

// validateInstance performs structural validation on a parsed instance.
// Parameter ranges are checked through the engine's own validation so the
// two layers cannot drift apart.
func validateInstance(in *Instance) error {
	switch in.Provider {
	case "", ProviderEuclidean, ProviderGreatCircle, ProviderRoad:
	default:
		return fmt.Errorf("unknown provider: %s (must be %s, %s, or %s)",
			in.Provider, ProviderEuclidean, ProviderGreatCircle, ProviderRoad)
	}
	if in.Provider == ProviderRoad && in.BaseURL == "" {
		return fmt.Errorf("provider %s requires base_url", ProviderRoad)
	}

	if len(in.Points) < 2 {
		return fmt.Errorf("at least two points must be defined")
	}
	ids := make(map[string]bool, len(in.Points))
	for i, p := range in.Points {
		if p.ID == "" {
			return fmt.Errorf("point %d: id cannot be empty", i)
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate point id: %s", p.ID)
		}
		ids[p.ID] = true
	}

	if err := in.Params.EngineParams().Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}

	return nil
}
