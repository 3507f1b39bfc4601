package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadSecrets reads a .env-style file of KEY=VALUE lines, keeping asset
// credentials out of the YAML config. Blank lines and # comments are
// skipped, a leading "export " is allowed, and one level of matching
// single or double quotes around the value is removed.
func LoadSecrets(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening secrets file: %w", err)
	}
	defer f.Close()

	secrets := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("secrets file %s line %d: expected KEY=VALUE", path, lineNum)
		}

		secrets[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading secrets file: %w", err)
	}

	return secrets, nil
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if first, last := v[0], v[len(v)-1]; first == last && (first == '"' || first == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}
