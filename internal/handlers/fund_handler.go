package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dia/internal/funds"
	"dia/internal/services"
)

// FundHandler serves the fund catalog and recommendations.
type FundHandler struct {
	fundService services.FundServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// ListFunds returns the catalog
// @Summary     List funds
// @Description The full static catalog of investment funds.
// @Tags        funds
// @Produce     json
// @Success     200 {object} map[string]interface{} "Funds"
// @Router      /funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	respondOK(c, http.StatusOK, "", gin.H{
		"funds":       h.fundService.ListFunds(),
		"total_funds": funds.Count(),
	})
}

// Recommend returns the fund for the caller's risk profile
// @Summary     Recommend a fund
// @Description The fund fixed for the authenticated user's risk tier, with a human-readable reason.
// @Tags        funds
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Recommendation"
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /funds/recommend [get]
func (h *FundHandler) Recommend(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rec, err := h.fundService.Recommend(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"user_risk_profile": rec.RiskProfile,
		"recommendation": gin.H{
			"fund_id":            rec.Fund.ID,
			"fund_name":          rec.Fund.Name,
			"description":        rec.Fund.Description,
			"risk_level":         rec.Fund.RiskLevel,
			"annual_return_mock": rec.Fund.AnnualReturn,
			"sector":             rec.Fund.Sector,
			"min_investment_azn": rec.Fund.MinInvestment,
		},
		"recommendation_reason": rec.Reason,
	})
}
