package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dia/internal/services"
)

// PortfolioHandler serves portfolio views.
type PortfolioHandler struct {
	userService   services.UserServicer
	ledgerService services.LedgerServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(userService services.UserServicer, ledgerService services.LedgerServicer) *PortfolioHandler {
	return &PortfolioHandler{userService: userService, ledgerService: ledgerService}
}

// GetPortfolio returns a user's portfolio
// @Summary     Get a user's portfolio
// @Description Current position joined with the held fund's catalog details. Users without a portfolio row read as a zeroed position.
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path string true "User id"
// @Success     200 {object} map[string]interface{} "Portfolio"
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /user/{user_id}/portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID := c.Param("user_id")

	if _, err := h.userService.GetUserByID(userID); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.ledgerService.GetPortfolio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var fundDetails gin.H
	if view.Fund != nil {
		fundDetails = gin.H{
			"name":               view.Fund.Name,
			"sector":             view.Fund.Sector,
			"annual_return_mock": view.Fund.AnnualReturn,
		}
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"user_id": userID,
		"portfolio": gin.H{
			"total_value":              view.TotalValue,
			"invested_amount":          view.InvestedAmount,
			"last_24hr_change_percent": view.Last24hChange,
			"invested_fund":            fundDetails,
		},
		"currency": Currency,
	})
}
