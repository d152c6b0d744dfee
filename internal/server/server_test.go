package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/savrlabs/savr/internal/config"
	"github.com/savrlabs/savr/internal/database"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(db, config.Default(), logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRouterRoutes(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.Client()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{"GET", "/api/profile", "", http.StatusOK},
		{"GET", "/api/inventory/items", "", http.StatusOK},
		{"GET", "/api/inventory/groups", "", http.StatusOK},
		{"POST", "/api/inventory/items", `{"name":"Banana","quantity":"3","expiry_date":"01/01/2027"}`, http.StatusCreated},
		{"DELETE", "/api/inventory/items/0", "", http.StatusNoContent},
		{"GET", "/api/grocery/items", "", http.StatusOK},
		{"GET", "/api/grocery/groups", "", http.StatusOK},
		{"POST", "/api/meals/generate", "", http.StatusOK},
		{"GET", "/api/meals", "", http.StatusOK},
		{"GET", "/api/plan", "", http.StatusOK},
		{"PUT", "/api/plan/days/0", `{"recipeIds":["banana_oatmeal"]}`, http.StatusOK},
		{"GET", "/api/catalog/recipes", "", http.StatusOK},
		{"GET", "/api/catalog/foods", "", http.StatusOK},
		{"GET", "/api/backups", "", http.StatusOK},
		{"GET", "/api/backups/status", "", http.StatusOK},
		{"POST", "/api/backups", "", http.StatusConflict},
		{"GET", "/api/push/vapid-key", "", http.StatusNotFound},
		{"GET", "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if tt.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestBackupStatusDisabledByDefault(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/backups/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	defer resp.Body.Close()

	var status struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.State != "disabled" {
		t.Errorf("state = %q, want disabled", status.State)
	}
}
