//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHealthz(t *testing.T) {
	resp, err := http.Get(fmt.Sprintf("%s/healthz", baseURL()))
	if err != nil {
		t.Fatalf("health check request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestPing(t *testing.T) {
	var body map[string]bool
	if status := getJSON(t, "/api/ping", &body); status != http.StatusOK {
		t.Fatalf("unexpected ping status: %d", status)
	}
	if !body["pong"] {
		t.Fatalf("expected pong, got %v", body)
	}
}
