package handlers

import (
	"net/http"
	"testing"
)

func TestListFundsEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/funds", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := decodeBody(t, w)["data"].(map[string]any)
	assertJSONNumber(t, data, "total_funds", 3)

	funds := data["funds"].([]any)
	if len(funds) != 3 {
		t.Fatalf("expected 3 funds, got %d", len(funds))
	}
	first := funds[0].(map[string]any)
	if first["id"] != "fund_001" || first["name"] != "Energy Transition Fund" {
		t.Errorf("unexpected first fund: %v", first)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	t.Run("per_profile", func(t *testing.T) {
		tests := []struct {
			profile string
			fundID  string
		}{
			{"Conservative", "fund_001"},
			{"Moderate", "fund_002"},
			{"Aggressive", "fund_003"},
		}

		for _, tt := range tests {
			t.Run(tt.profile, func(t *testing.T) {
				router, _ := newTestRouter()
				_, token := registerAndLogin(t, router, "investor_"+tt.profile, tt.profile)

				w := doJSON(t, router, http.MethodGet, "/api/funds/recommend", token, nil)
				if w.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
				}

				data := decodeBody(t, w)["data"].(map[string]any)
				if data["user_risk_profile"] != tt.profile {
					t.Errorf("expected profile %s, got %v", tt.profile, data["user_risk_profile"])
				}
				rec := data["recommendation"].(map[string]any)
				if rec["fund_id"] != tt.fundID {
					t.Errorf("expected %s, got %v", tt.fundID, rec["fund_id"])
				}
				assertJSONNumber(t, rec, "min_investment_azn", 10)
				if data["recommendation_reason"] == "" {
					t.Error("expected a recommendation reason")
				}
			})
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _ := newTestRouter()

		w := doJSON(t, router, http.MethodGet, "/api/funds/recommend", "", nil)
		assertErrorCode(t, w, http.StatusUnauthorized, "AUTH_TOKEN_MISSING")
	})

	t.Run("invalid_token", func(t *testing.T) {
		router, _ := newTestRouter()

		w := doJSON(t, router, http.MethodGet, "/api/funds/recommend", "token_bogus", nil)
		assertErrorCode(t, w, http.StatusUnauthorized, "AUTH_TOKEN_INVALID")
	})
}
