package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/avelsher/armory/internal/api"
	"github.com/avelsher/armory/internal/armory"
	"github.com/avelsher/armory/internal/catalog"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := catalog.NewMemoryStorage()
	handler := api.NewHandler(armory.NewGreedy(), armory.NewExhaustive(), store)
	logger := zaptest.NewLogger(t)
	return api.NewRouter(handler, logger)
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	catalogPayload := map[string]any{
		"items": []map[string]any{
			{"description": "A", "cost": 10, "defense": 60},
			{"description": "B", "cost": 20, "defense": 100},
			{"description": "C", "cost": 30, "defense": 120},
		},
	}
	payload, _ := json.Marshal(catalogPayload)
	rec = performRequest(t, handler, http.MethodPut, "/api/armory", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from catalog update, got %d: %s", rec.Code, rec.Body.String())
	}

	type optimizeResult struct {
		TotalCost    float64 `json:"totalCost"`
		TotalDefense float64 `json:"totalDefense"`
	}

	body, _ := json.Marshal(map[string]any{"budget": 50, "solver": "exhaustive"})
	rec = performRequest(t, handler, http.MethodPost, "/api/optimize", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from optimize, got %d: %s", rec.Code, rec.Body.String())
	}

	var exact optimizeResult
	if err := json.NewDecoder(rec.Body).Decode(&exact); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if exact.TotalDefense != 220 || exact.TotalCost != 50 {
		t.Fatalf("unexpected exhaustive result: defense %v cost %v", exact.TotalDefense, exact.TotalCost)
	}

	body, _ = json.Marshal(map[string]any{"budget": 50, "solver": "greedy"})
	rec = performRequest(t, handler, http.MethodPost, "/api/optimize", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from optimize, got %d", rec.Code)
	}

	var heuristic optimizeResult
	if err := json.NewDecoder(rec.Body).Decode(&heuristic); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if heuristic.TotalDefense != 160 {
		t.Fatalf("unexpected greedy result: defense %v", heuristic.TotalDefense)
	}
	if heuristic.TotalDefense >= exact.TotalDefense {
		t.Fatalf("expected exhaustive to beat greedy, got %v vs %v", exact.TotalDefense, heuristic.TotalDefense)
	}
}
