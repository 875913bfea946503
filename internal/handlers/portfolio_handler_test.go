package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetPortfolioEndpoint(t *testing.T) {
	t.Run("after_deposit", func(t *testing.T) {
		router, _ := newTestRouter()
		userID, token := registerAndLogin(t, router, "aysel", "Moderate")

		doJSON(t, router, http.MethodPost, "/api/transactions/deposit", token, gin.H{
			"amount":  150.0,
			"fund_id": "fund_003",
		})

		w := doJSON(t, router, http.MethodGet, "/api/user/"+userID+"/portfolio", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		data := decodeBody(t, w)["data"].(map[string]any)
		if data["user_id"] != userID {
			t.Errorf("expected user_id %s, got %v", userID, data["user_id"])
		}
		if data["currency"] != "AZN" {
			t.Errorf("expected currency AZN, got %v", data["currency"])
		}

		portfolio := data["portfolio"].(map[string]any)
		assertJSONNumber(t, portfolio, "total_value", 150)
		assertJSONNumber(t, portfolio, "invested_amount", 150)

		fund := portfolio["invested_fund"].(map[string]any)
		if fund["name"] != "ICT Innovation Fund" || fund["sector"] != "ICT & Technology" {
			t.Errorf("unexpected fund details: %v", fund)
		}
		assertJSONNumber(t, fund, "annual_return_mock", 14.8)
	})

	t.Run("fresh_user_reads_zeroed", func(t *testing.T) {
		router, _ := newTestRouter()
		userID, token := registerAndLogin(t, router, "aysel", "Moderate")

		w := doJSON(t, router, http.MethodGet, "/api/user/"+userID+"/portfolio", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		portfolio := decodeBody(t, w)["data"].(map[string]any)["portfolio"].(map[string]any)
		assertJSONNumber(t, portfolio, "total_value", 0)
		if portfolio["invested_fund"] != nil {
			t.Errorf("expected no invested fund, got %v", portfolio["invested_fund"])
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		router, _ := newTestRouter()
		_, token := registerAndLogin(t, router, "aysel", "Moderate")

		w := doJSON(t, router, http.MethodGet, "/api/user/user_nobody/portfolio", token, nil)
		assertErrorCode(t, w, http.StatusNotFound, "USER_NOT_FOUND")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _ := newTestRouter()
		userID, _ := registerAndLogin(t, router, "aysel", "Moderate")

		w := doJSON(t, router, http.MethodGet, "/api/user/"+userID+"/portfolio", "", nil)
		assertErrorCode(t, w, http.StatusUnauthorized, "AUTH_TOKEN_MISSING")
	})
}
