package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-connector/internal/types"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(map[string]any{
		"host":               "https://product.example.com",
		"api_key":            "k",
		"verify_server_cert": true,
		"timeout":            "10s",
		"unrelated":          "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, types.AssetConfig{
		Host:             "https://product.example.com",
		APIKey:           "k",
		VerifyServerCert: true,
		Timeout:          10 * time.Second,
	}, cfg)
}

func TestDecodeMissingKeysKeepZeroValues(t *testing.T) {
	cfg, err := Decode(map[string]any{"host": "https://x"})
	require.NoError(t, err)

	assert.Equal(t, "https://x", cfg.Host)
	assert.Empty(t, cfg.APIKey)
	assert.False(t, cfg.VerifyServerCert)
	assert.Zero(t, cfg.Timeout)
}

func TestDecodeNil(t *testing.T) {
	cfg, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, types.AssetConfig{}, cfg)
}

func TestDecodeWeakTypes(t *testing.T) {
	cfg, err := Decode(map[string]any{
		"verify_server_cert": "true",
		"timeout":            float64(30),
	})
	require.NoError(t, err)

	assert.True(t, cfg.VerifyServerCert)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestDecodeInvalidValue(t *testing.T) {
	_, err := Decode(map[string]any{"host": map[string]any{"nested": true}})
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "asset.yaml")
	require.NoError(t, os.WriteFile(file, []byte("host: https://from-file\napi_key: file-key\ntimeout: 5s\n"), 0644))
	secrets := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(secrets, []byte("API_KEY=secret-key\nTEMPLATE_CONNECTOR_VERIFY_SERVER_CERT=true\n"), 0644))

	t.Setenv("TEMPLATE_CONNECTOR_HOST", "https://from-env")

	cfg, err := Load(Sources{File: file, SecretsFile: secrets})
	require.NoError(t, err)

	assert.Equal(t, "https://from-env", cfg.Host)
	assert.Equal(t, "secret-key", cfg.APIKey)
	assert.True(t, cfg.VerifyServerCert)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("TEMPLATE_CONNECTOR_HOST", "https://env")
	t.Setenv("TEMPLATE_CONNECTOR_API_KEY", "env-key")
	t.Setenv("TEMPLATE_CONNECTOR_TIMEOUT", "2m")

	cfg, err := Load(Sources{})
	require.NoError(t, err)

	assert.Equal(t, "https://env", cfg.Host)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("TEMPLATE_CONNECTOR_VERIFY_SERVER_CERT", "maybe")

	_, err := Load(Sources{})
	assert.ErrorContains(t, err, "processing environment")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Sources{File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestToMapRoundTrip(t *testing.T) {
	in := types.AssetConfig{Host: "https://x", APIKey: "k", VerifyServerCert: true, Timeout: 3 * time.Second}

	m := ToMap(in)
	assert.Equal(t, "3s", m[KeyTimeout])

	out, err := Decode(m)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestToMapOmitsZeroTimeout(t *testing.T) {
	m := ToMap(types.AssetConfig{Host: "https://x"})
	_, ok := m[KeyTimeout]
	assert.False(t, ok)
}
