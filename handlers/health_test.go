package handlers_test

import (
	"net/http"
	"testing"
)

func TestRootBanner(t *testing.T) {
	r := newTestServer(t)

	w := performRequest(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}
	decodeJSON(t, w, &body)
	if body.Message != "HRMS Lite API is running" {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if body.Version != "1.0.0" {
		t.Errorf("unexpected version: %q", body.Version)
	}
}

func TestHealthCheck(t *testing.T) {
	r := newTestServer(t)

	w := performRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
