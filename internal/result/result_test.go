package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionResultStartsFailed(t *testing.T) {
	ar := New(nil)
	assert.True(t, ar.IsFail())
	assert.Equal(t, Failure, ar.Status())
	assert.Empty(t, ar.Message())
}

func TestNewCopiesParams(t *testing.T) {
	params := map[string]any{"ip": "10.0.0.1"}
	ar := New(params)
	params["ip"] = "changed"

	assert.Equal(t, "10.0.0.1", ar.Params()["ip"])
}

func TestSetStatusReturnsStatus(t *testing.T) {
	ar := New(nil)

	got := ar.SetStatus(Success, "")
	assert.Equal(t, Success, got)
	assert.True(t, ar.IsSuccess())

	got = ar.SetStatus(Failure, "boom")
	assert.Equal(t, Failure, got)
	assert.Equal(t, "boom", ar.Message())
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, IsSuccess(Success))
	assert.False(t, IsFail(Success))
	assert.True(t, IsFail(Failure))
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "failed", Failure.String())
}

func TestMarshalJSON(t *testing.T) {
	ar := New(map[string]any{"limit": 5})
	ar.AddDebugData(map[string]any{"r_status_code": 200})
	ar.AddData(map[string]any{"id": "a"})
	ar.UpdateSummary(map[string]any{"total": 1})
	ar.SetStatus(Success, "done")

	raw, err := json.Marshal(ar)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "success", decoded["status"])
	assert.Equal(t, "done", decoded["message"])
	assert.Equal(t, map[string]any{"limit": float64(5)}, decoded["parameter"])
	assert.Equal(t, map[string]any{"total": float64(1)}, decoded["summary"])
	assert.Len(t, decoded["data"], 1)
	assert.Len(t, decoded["debug_data"], 1)
}

func TestMarshalJSONEmptyData(t *testing.T) {
	raw, err := json.Marshal(New(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"parameter":{},"status":"failed","data":[],"summary":{}}`, string(raw))
}
