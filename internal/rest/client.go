// Package rest is the connector's single entry point for calling the
// external product's REST API.
package rest

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"template-connector/internal/logger"
	"template-connector/internal/result"
	"template-connector/internal/types"
)

// Request holds the optional parts of a REST call. The zero value is a
// plain GET.
type Request struct {
	Method  string
	Headers map[string]string
	Params  map[string]string
	// Data is sent form-encoded. It takes precedence over JSON.
	Data map[string]string
	JSON any
}

// Client issues REST calls against the configured base URL.
type Client struct {
	baseURL string
	http    *resty.Client
}

// New creates a client from the asset configuration. A zero Timeout means
// calls are bounded only by the caller's context.
func New(cfg types.AssetConfig) *Client {
	rc := resty.New().
		SetLogger(restyLogger{logger.Get()}).
		// #nosec G402 -- certificate verification is an asset setting.
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: !cfg.VerifyServerCert})
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{
		baseURL: cfg.Host,
		http:    rc,
	}
}

// BaseURL returns the URL every endpoint is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Call performs one request to baseURL+endpoint and records the outcome on
// ar. On success it returns the decoded JSON body, the raw text when the
// body is not JSON, or an empty map when there is no body. On failure it
// sets ar to failed with a descriptive message and returns a nil payload.
func (c *Client) Call(ctx context.Context, endpoint string, ar *result.ActionResult, req Request) (result.Status, any) {
	url := c.baseURL + endpoint
	log := logger.Get()
	log.Debug().Str("url", sanitizeURL(url)).Msg("Making REST call")

	method, err := ParseMethod(req.Method)
	if err != nil {
		return ar.SetStatus(result.Failure, fmt.Sprintf("Error making REST call: %v", err)), nil
	}

	r := c.http.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if len(req.Params) > 0 {
		r.SetQueryParams(req.Params)
	}
	switch {
	case req.Data != nil:
		r.SetFormData(req.Data)
	case req.JSON != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.JSON)
	}

	start := time.Now()
	resp, err := r.Execute(string(method), url)
	callDuration.WithLabelValues(string(method)).Observe(time.Since(start).Seconds())
	if err != nil {
		callsTotal.WithLabelValues(string(method), outcomeTransportError).Inc()
		log.Warn().Err(err).Str("method", string(method)).Str("url", sanitizeURL(url)).Msg("REST call failed")
		return ar.SetStatus(result.Failure, fmt.Sprintf("Error making REST call: %v", err)), nil
	}

	body := resp.Body()
	text := string(body)
	code := resp.StatusCode()

	ar.AddDebugData(map[string]any{"r_status_code": code})
	ar.AddDebugData(map[string]any{"r_text": text})
	ar.AddDebugData(map[string]any{"r_headers": resp.Header()})

	if code >= 200 && code < 300 {
		callsTotal.WithLabelValues(string(method), outcomeSuccess).Inc()
		return result.Success, decodeBody(body)
	}

	callsTotal.WithLabelValues(string(method), outcomeHTTPError).Inc()
	log.Debug().Int("status_code", code).Str("url", sanitizeURL(url)).Msg("REST call returned error status")
	return ar.SetStatus(result.Failure, errorMessage(code, body)), nil
}

// decodeBody interprets a 2xx body.
func decodeBody(body []byte) any {
	if len(body) == 0 {
		return map[string]any{}
	}
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	return parsed
}

// errorMessage builds the failure message for a non-2xx response.
func errorMessage(code int, body []byte) string {
	msg := fmt.Sprintf("Error from server. Status Code: %d", code)
	if len(body) == 0 {
		return msg
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Sprintf("%s. Error: %s", msg, body)
	}

	detail := "Unknown error"
	if obj, ok := parsed.(map[string]any); ok {
		switch v := obj["error"].(type) {
		case nil:
		case string:
			detail = v
		default:
			if b, err := json.Marshal(v); err == nil {
				detail = string(b)
			}
		}
	}
	return fmt.Sprintf("%s. Error: %s", msg, detail)
}

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct {
	l *zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }
