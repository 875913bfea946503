package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"dia/internal/middleware"
	"dia/internal/services"
	"dia/internal/store"
	"dia/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Exit(m.Run())
}

// newTestRouter wires the full API onto an in-memory store, mirroring the
// production route table.
func newTestRouter() (*gin.Engine, store.Store) {
	st := store.NewMemoryStore()

	userService := services.NewUserService(st)
	ledgerService := services.NewLedgerService(st)
	fundService := services.NewFundService(userService)
	leaderboardService := services.NewLeaderboardService(st, true)

	authHandler := NewAuthHandler(userService)
	portfolioHandler := NewPortfolioHandler(userService, ledgerService)
	fundHandler := NewFundHandler(fundService)
	transactionHandler := NewTransactionHandler(ledgerService)
	leaderboardHandler := NewLeaderboardHandler(leaderboardService)
	systemHandler := NewSystemHandler(st, "memory")

	router := gin.New()
	router.GET("/", systemHandler.Index)
	router.NoRoute(systemHandler.NotFound)

	api := router.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/funds", fundHandler.ListFunds)
	api.GET("/leaderboard", leaderboardHandler.Leaderboard)
	api.GET("/health", systemHandler.Health)
	api.GET("/b2b-status", systemHandler.B2BStatus)

	protected := api.Group("/")
	protected.Use(middleware.TokenAuth(userService))
	protected.GET("/user/:user_id/portfolio", portfolioHandler.GetPortfolio)
	protected.GET("/funds/recommend", fundHandler.Recommend)
	protected.GET("/transactions", transactionHandler.History)
	protected.POST("/transactions/deposit", transactionHandler.Deposit)
	protected.POST("/transactions/roundup", transactionHandler.RoundUp)
	protected.POST("/transactions/withdraw", transactionHandler.Withdraw)

	return router, st
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

// assertErrorCode checks the error envelope's status and code.
func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) map[string]any {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body["success"])
	}
	if body["code"] != code {
		t.Errorf("expected code %s, got %v", code, body["code"])
	}
	return body
}

// registerAndLogin creates a user through the API and returns its id and a
// live bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username, profile string) (userID, token string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username":     username,
		"password":     "password123",
		"risk_profile": profile,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	data := decodeBody(t, w)["data"].(map[string]any)
	return data["user_id"].(string), data["token"].(string)
}
