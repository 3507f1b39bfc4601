// Package result holds the per-invocation outcome of a connector action.
package result

import (
	"encoding/json"
	"maps"
)

// Status is the outcome of an action or of a step inside one.
type Status int

const (
	Failure Status = iota
	Success
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "failed"
}

// MarshalText encodes the status as "success" or "failed".
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsFail reports whether s is a failure.
func IsFail(s Status) bool { return s != Success }

// IsSuccess reports whether s is a success.
func IsSuccess(s Status) bool { return s == Success }

// ActionResult accumulates the status, message, data and debug output of
// one action invocation. A new result is failed until a handler sets it
// otherwise.
type ActionResult struct {
	params  map[string]any
	status  Status
	message string
	data    []any
	summary map[string]any
	debug   []map[string]any
}

// New creates an action result for the given parameters. The parameter
// map is copied.
func New(params map[string]any) *ActionResult {
	p := make(map[string]any, len(params))
	maps.Copy(p, params)
	return &ActionResult{
		params:  p,
		status:  Failure,
		summary: make(map[string]any),
	}
}

// SetStatus records the status and message and returns the status so
// handlers can write `return ar.SetStatus(...)`.
func (r *ActionResult) SetStatus(status Status, message string) Status {
	r.status = status
	r.message = message
	return status
}

func (r *ActionResult) Status() Status  { return r.status }
func (r *ActionResult) Message() string { return r.message }
func (r *ActionResult) IsFail() bool    { return IsFail(r.status) }
func (r *ActionResult) IsSuccess() bool { return IsSuccess(r.status) }

// Params returns the parameters the result was created with.
func (r *ActionResult) Params() map[string]any { return r.params }

// AddDebugData appends one entry of raw diagnostic data.
func (r *ActionResult) AddDebugData(entry map[string]any) {
	r.debug = append(r.debug, entry)
}

// DebugData returns the recorded debug entries in insertion order.
func (r *ActionResult) DebugData() []map[string]any { return r.debug }

// AddData appends one data item produced by the action.
func (r *ActionResult) AddData(item any) {
	r.data = append(r.data, item)
}

func (r *ActionResult) Data() []any { return r.data }

// UpdateSummary merges values into the result summary.
func (r *ActionResult) UpdateSummary(values map[string]any) {
	maps.Copy(r.summary, values)
}

func (r *ActionResult) Summary() map[string]any { return r.summary }

type actionResultJSON struct {
	Parameter map[string]any   `json:"parameter"`
	Status    Status           `json:"status"`
	Message   string           `json:"message,omitempty"`
	Data      []any            `json:"data"`
	Summary   map[string]any   `json:"summary"`
	DebugData []map[string]any `json:"debug_data,omitempty"`
}

// MarshalJSON encodes the result in the shape the host displays.
func (r *ActionResult) MarshalJSON() ([]byte, error) {
	data := r.data
	if data == nil {
		data = []any{}
	}
	return json.Marshal(actionResultJSON{
		Parameter: r.params,
		Status:    r.status,
		Message:   r.message,
		Data:      data,
		Summary:   r.summary,
		DebugData: r.debug,
	})
}
