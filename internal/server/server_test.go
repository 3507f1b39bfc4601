package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"template-connector/internal/connector"
	"template-connector/internal/plugin"
)

func testSetup(t *testing.T, productStatus int) http.Handler {
	t.Helper()
	product := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(productStatus)
		io.WriteString(w, `{"error": "db down"}`)
	}))
	t.Cleanup(product.Close)

	return NewServer(map[string]any{"host": product.URL, "api_key": "k"}).Handler()
}

func TestHealthEndpoint(t *testing.T) {
	h := testSetup(t, http.StatusOK)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("body status = %q, want ok", body["status"])
	}
}

func TestListActions(t *testing.T) {
	h := testSetup(t, http.StatusOK)

	req := httptest.NewRequest("GET", "/actions", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var defs []plugin.ActionDef
	json.NewDecoder(w.Body).Decode(&defs)
	if len(defs) != 1 || defs[0].Name != connector.ActionTestConnectivity {
		t.Errorf("actions = %+v, want only %s", defs, connector.ActionTestConnectivity)
	}
}

func TestRunAction(t *testing.T) {
	h := testSetup(t, http.StatusOK)

	body, _ := json.Marshal(map[string]any{"id": "abc", "input": map[string]any{}})
	req := httptest.NewRequest("POST", "/actions/test_connectivity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var resp plugin.Response
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Status != "success" {
		t.Errorf("action status = %q, want success", resp.Status)
	}
	if resp.ID != "abc" {
		t.Errorf("id = %q, want abc", resp.ID)
	}
}

func TestRunActionFailure(t *testing.T) {
	h := testSetup(t, http.StatusServiceUnavailable)

	req := httptest.NewRequest("POST", "/actions/test_connectivity", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 500 {
		t.Errorf("status = %d, want 500", w.Code)
	}

	var resp plugin.Response
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error != "Error from server. Status Code: 503. Error: db down" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestRunActionInvalidBody(t *testing.T) {
	h := testSetup(t, http.StatusOK)

	req := httptest.NewRequest("POST", "/actions/test_connectivity", strings.NewReader("{"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRunActionMethodNotAllowed(t *testing.T) {
	h := testSetup(t, http.StatusOK)

	req := httptest.NewRequest("GET", "/actions/test_connectivity", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 405 {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := testSetup(t, http.StatusOK)

	run := httptest.NewRequest("POST", "/actions/test_connectivity", nil)
	h.ServeHTTP(httptest.NewRecorder(), run)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "template_connector_actions_total") {
		t.Error("metrics output missing template_connector_actions_total")
	}
}
