package config

import (
	"fmt"
	"net/url"
	"strings"

	"template-connector/internal/types"
)

// ValidationError collects multiple validation issues.
type ValidationError struct {
	Errors []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(ve.Errors, "\n  - "))
}

func (ve *ValidationError) Add(msg string) {
	ve.Errors = append(ve.Errors, msg)
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Validate reports configuration that is certain to fail on first use.
// The connector itself never calls it: initialization accepts any
// configuration and problems surface on the first REST call.
func Validate(cfg types.AssetConfig) error {
	ve := &ValidationError{}

	if cfg.Host == "" {
		ve.Add(fmt.Sprintf("%q is required", KeyHost))
	} else if u, err := url.Parse(cfg.Host); err != nil {
		ve.Add(fmt.Sprintf("%q is not a valid URL: %v", KeyHost, err))
	} else {
		if u.Scheme != "http" && u.Scheme != "https" {
			ve.Add(fmt.Sprintf("%q must use http or https, got %q", KeyHost, u.Scheme))
		}
		if u.Host == "" {
			ve.Add(fmt.Sprintf("%q has no host name", KeyHost))
		}
		if strings.HasSuffix(u.Path, "/") {
			ve.Add(fmt.Sprintf("%q must not end with '/': endpoints are appended verbatim", KeyHost))
		}
	}

	if cfg.APIKey == "" {
		ve.Add(fmt.Sprintf("%q is required", KeyAPIKey))
	}

	if cfg.Timeout < 0 {
		ve.Add(fmt.Sprintf("%q must not be negative, got %v", KeyTimeout, cfg.Timeout))
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
