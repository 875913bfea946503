package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dia/internal/services"
)

// LeaderboardHandler serves the investor leaderboard.
type LeaderboardHandler struct {
	leaderboardService services.LeaderboardServicer
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService services.LeaderboardServicer) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Leaderboard returns the top investors
// @Summary     Leaderboard
// @Description Top portfolios by total value. In demo mode, short result sets are padded with rows flagged is_placeholder.
// @Tags        leaderboard
// @Produce     json
// @Success     200 {object} map[string]interface{} "Leaderboard"
// @Router      /leaderboard [get]
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.TopInvestors()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"leaderboard": entries,
		"updated_at":  time.Now().Format(time.RFC3339),
		"currency":    Currency,
	})
}
