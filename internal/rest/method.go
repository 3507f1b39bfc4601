package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Method is an HTTP verb the REST helper can issue.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodDelete  Method = http.MethodDelete
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
)

// ErrUnsupportedMethod is returned by ParseMethod for verbs outside the
// supported set.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// ParseMethod maps a case-insensitive verb name to a Method. An empty
// name means GET.
func ParseMethod(name string) (Method, error) {
	if name == "" {
		return MethodGet, nil
	}
	switch m := Method(strings.ToUpper(name)); m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
	}
}
