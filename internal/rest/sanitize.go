package rest

import (
	"net/url"
	"strings"
)

// sensitiveParams are query parameter names redacted before logging.
// Matched case-insensitively as substrings.
var sensitiveParams = []string{
	"api_key",
	"apikey",
	"token",
	"password",
	"auth",
	"secret",
	"key",
	"credential",
}

// sanitizeURL redacts sensitive query parameters and userinfo from a URL.
// Unparseable input is returned unchanged.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	for param := range q {
		if isSensitiveParam(param) {
			q.Set(param, "[REDACTED]")
		}
	}

	safe := *u
	safe.User = nil
	safe.RawQuery = q.Encode()
	return safe.String()
}

func isSensitiveParam(param string) bool {
	lower := strings.ToLower(param)
	for _, sensitive := range sensitiveParams {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}
