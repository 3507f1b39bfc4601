package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"template-connector/internal/types"
)

// LoadFile reads and parses a YAML asset configuration file. Values are
// decoded like the host map, so a bare `timeout: 30` means 30 seconds.
func LoadFile(path string) (*types.AssetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	var cfg types.AssetConfig
	if err := decodeInto(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return &cfg, nil
}
