package cmd

import (
	"fmt"

	"template-connector/internal/config"
	"template-connector/internal/connector"
)

func connectorOptions() []connector.Option {
	return []connector.Option{connector.WithStrictActions(strictActions)}
}

// loadAssetConfig layers --config, --secrets-file and the environment into
// the map the host would otherwise supply.
func loadAssetConfig() (map[string]any, error) {
	cfg, err := config.Load(config.Sources{File: configFile, SecretsFile: secretsFile})
	if err != nil {
		return nil, fmt.Errorf("loading asset config: %w", err)
	}
	return config.ToMap(cfg), nil
}
