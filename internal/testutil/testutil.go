// Package testutil holds HTTP helpers shared by handler tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// NewRequest creates a new HTTP request for testing. A non-empty body is sent
// as JSON.
func NewRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// Serve runs a request through h and records the response.
func Serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, NewRequest(method, path, body))
	return w
}

// DecodeBody decodes a recorded JSON object body.
func DecodeBody(t testing.TB, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

// ErrorStatus returns error.status from the JSON error envelope.
func ErrorStatus(t testing.TB, w *httptest.ResponseRecorder) int {
	t.Helper()
	errBody, ok := DecodeBody(t, w)["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error envelope: %s", w.Body.String())
	}
	status, ok := errBody["status"].(float64)
	if !ok {
		t.Fatalf("missing error.status: %s", w.Body.String())
	}
	return int(status)
}
