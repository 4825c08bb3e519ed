//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

// getJSON fetches path and decodes the body into out, returning the status.
func getJSON(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := http.Get(fmt.Sprintf("%s%s", baseURL(), path))
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response failed: %v", path, err)
		}
	}
	return resp.StatusCode
}
