// Package config turns host-supplied or developer-supplied settings into
// a types.AssetConfig.
//
// The host path hands the connector a free-form map (Decode). The
// developer path layers a YAML file, a .env secrets file and
// TEMPLATE_CONNECTOR_* environment variables, in that order (Load).
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"

	"template-connector/internal/types"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. TEMPLATE_CONNECTOR_HOST.
const EnvPrefix = "TEMPLATE_CONNECTOR"

// Keys of the host configuration map.
const (
	KeyHost             = "host"
	KeyAPIKey           = "api_key"
	KeyVerifyServerCert = "verify_server_cert"
	KeyTimeout          = "timeout"
)

// Sources names the developer-side configuration inputs. Empty paths are
// skipped.
type Sources struct {
	File        string
	SecretsFile string
}

// Decode reads the asset configuration out of a host-supplied map.
// Missing keys keep their zero value; unknown keys are ignored.
func Decode(raw map[string]any) (types.AssetConfig, error) {
	var cfg types.AssetConfig
	err := decodeInto(raw, &cfg)
	return cfg, err
}

func decodeInto(raw map[string]any, cfg *types.AssetConfig) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("creating config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decoding asset config: %w", err)
	}
	return nil
}

// secondsToDurationHook reads bare numbers as seconds, which is how JSON
// hosts usually express a timeout.
func secondsToDurationHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	}
	return data, nil
}

// Load builds the asset configuration for running outside the host.
func Load(src Sources) (types.AssetConfig, error) {
	var cfg types.AssetConfig

	if src.File != "" {
		fileCfg, err := LoadFile(src.File)
		if err != nil {
			return cfg, err
		}
		cfg = *fileCfg
	}

	if src.SecretsFile != "" {
		secrets, err := LoadSecrets(src.SecretsFile)
		if err != nil {
			return cfg, fmt.Errorf("loading secrets: %w", err)
		}
		if err := decodeInto(secretsToMap(secrets), &cfg); err != nil {
			return cfg, fmt.Errorf("applying secrets file %s: %w", src.SecretsFile, err)
		}
	}

	// The full variable names live in the struct tags; an empty prefix
	// stops envconfig from falling back to bare names like HOST.
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("processing environment: %w", err)
	}

	return cfg, nil
}

// secretsToMap maps HOST, API_KEY or TEMPLATE_CONNECTOR_API_KEY style keys
// onto the host map keys.
func secretsToMap(secrets map[string]string) map[string]any {
	raw := make(map[string]any, len(secrets))
	for k, v := range secrets {
		key := strings.ToLower(strings.TrimPrefix(strings.ToUpper(k), EnvPrefix+"_"))
		raw[key] = v
	}
	return raw
}

// ToMap renders cfg as the map a host would pass to the connector.
func ToMap(cfg types.AssetConfig) map[string]any {
	m := map[string]any{
		KeyHost:             cfg.Host,
		KeyAPIKey:           cfg.APIKey,
		KeyVerifyServerCert: cfg.VerifyServerCert,
	}
	if cfg.Timeout > 0 {
		m[KeyTimeout] = cfg.Timeout.String()
	}
	return m
}
