package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"template-connector/internal/result"
)

// The host talks to the connector over JSON on stdin/stdout:
//
//	Describe: run with --describe to get {"name": "...", "version": "...", "actions": [...]}
//	Request:  {"id": "...", "action": "<action>", "input": {...}, "config": {...}}
//	Response: {"id": "...", "status": "success|failed", "message": "...", "error": "...", "progress": [...], "results": [...]}

// Describe is the metadata document printed for --describe.
type Describe struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Actions []ActionDef `json:"actions"`
}

// Request is one action invocation sent by the host.
type Request struct {
	ID     string         `json:"id,omitempty"`
	Action string         `json:"action"`
	Input  map[string]any `json:"input"`
	Config map[string]any `json:"config"`
}

// Response is the outcome of one Request.
type Response struct {
	ID       string                 `json:"id"`
	Action   string                 `json:"action"`
	Status   string                 `json:"status"`
	Message  string                 `json:"message,omitempty"`
	Output   map[string]any         `json:"output,omitempty"`
	Error    string                 `json:"error,omitempty"`
	Progress []string               `json:"progress,omitempty"`
	Results  []*result.ActionResult `json:"results,omitempty"`
}

// RunFunc executes one decoded request.
type RunFunc func(ctx context.Context, req Request) *Response

// Serve reads a single request from in, runs it and writes the response
// to out. A request that cannot be decoded still produces a failed
// response; the returned error only reports problems writing to out.
func Serve(ctx context.Context, in io.Reader, out io.Writer, run RunFunc) error {
	var resp *Response

	var req Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		resp = &Response{
			Status: result.Failure.String(),
			Error:  fmt.Sprintf("decoding request: %v", err),
		}
	} else {
		resp = run(ctx, req)
	}

	return WriteJSON(out, resp)
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
