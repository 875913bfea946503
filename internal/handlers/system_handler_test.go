package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "healthy" || body["database"] != "healthy" {
		t.Errorf("unexpected health payload: %v", body)
	}
	if body["backend"] != "memory" {
		t.Errorf("expected backend memory, got %v", body["backend"])
	}
	if body["version"] != ServiceVersion {
		t.Errorf("expected version %s, got %v", ServiceVersion, body["version"])
	}
}

func TestIndexEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["success"] != true || body["message"] == "" {
		t.Errorf("unexpected banner payload: %v", body)
	}
}

func TestB2BStatusEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/b2b-status", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := decodeBody(t, w)["data"].(map[string]any)
	if data["partnership_status"] != "Operational" {
		t.Errorf("expected Operational, got %v", data["partnership_status"])
	}
	services := data["services"].(map[string]any)
	if services["round_up_processing"] != "Active" {
		t.Errorf("unexpected services payload: %v", services)
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/nope", "", nil)
	assertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestLeaderboardEndpoint(t *testing.T) {
	router, _ := newTestRouter()
	_, token := registerAndLogin(t, router, "aysel", "Moderate")
	doJSON(t, router, http.MethodPost, "/api/transactions/deposit", token, gin.H{
		"amount":  500.0,
		"fund_id": "fund_002",
	})

	w := doJSON(t, router, http.MethodGet, "/api/leaderboard", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := decodeBody(t, w)["data"].(map[string]any)
	if data["currency"] != "AZN" || data["updated_at"] == "" {
		t.Errorf("unexpected envelope: %v", data)
	}

	entries := data["leaderboard"].([]any)
	if len(entries) != 4 {
		t.Fatalf("expected 1 real + 3 placeholder rows, got %d", len(entries))
	}
	top := entries[0].(map[string]any)
	if top["username"] != "aysel" || top["is_placeholder"] != false {
		t.Errorf("unexpected top row: %v", top)
	}
	assertJSONNumber(t, top, "total_invested", 500)
	second := entries[1].(map[string]any)
	if second["is_placeholder"] != true {
		t.Errorf("expected placeholder at rank 2, got %v", second)
	}
}
