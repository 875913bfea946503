package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dia/internal/errors"
	"dia/internal/pagination"
	"dia/internal/services"
)

// TransactionHandler serves the money-movement endpoints.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// DepositRequest represents the deposit request payload
type DepositRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
	FundID string   `json:"fund_id" binding:"required"`
}

// RoundUpRequest represents the round-up request payload
type RoundUpRequest struct {
	TransactionAmount *float64 `json:"transaction_amount" binding:"required"`
	FundID            string   `json:"fund_id" binding:"required"`
}

// WithdrawRequest represents the withdrawal request payload
type WithdrawRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// Deposit invests an amount into a fund
// @Summary     Deposit
// @Description Add an amount to the portfolio and record a deposit against the given fund.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DepositRequest true "Deposit details"
// @Success     200 {object} map[string]interface{} "Deposit applied"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Router      /transactions/deposit [post]
func (h *TransactionHandler) Deposit(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.ledgerService.Deposit(userID, req.FundID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Deposit successful!", gin.H{
		"transaction": gin.H{
			"type":     result.Transaction.Type,
			"amount":   result.Transaction.Amount,
			"currency": Currency,
		},
		"investment": gin.H{
			"fund_id":   result.Fund.ID,
			"fund_name": result.Fund.Name,
		},
		"portfolio": gin.H{
			"previous_value":  result.PreviousValue,
			"new_total_value": result.NewTotalValue,
		},
	})
}

// RoundUp invests the round-up of a card transaction
// @Summary     Round-up investment
// @Description Invest the difference between a transaction amount and the next whole unit; whole amounts invest 1.0.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RoundUpRequest true "Round-up details"
// @Success     200 {object} map[string]interface{} "Round-up applied"
// @Failure     400 {object} ErrorResponse "Invalid transaction amount"
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Router      /transactions/roundup [post]
func (h *TransactionHandler) RoundUp(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RoundUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.ledgerService.RoundUp(userID, req.FundID, *req.TransactionAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Round-up investment processed successfully!", gin.H{
		"transaction": gin.H{
			"original_amount": result.OriginalAmount,
			"rounded_to":      result.RoundedTo,
			"roundup_amount":  result.RoundUpAmount,
			"currency":        Currency,
		},
		"investment": gin.H{
			"fund_id":         result.Fund.ID,
			"fund_name":       result.Fund.Name,
			"amount_invested": result.RoundUpAmount,
		},
		"portfolio": gin.H{
			"previous_value":  result.PreviousValue,
			"new_total_value": result.NewTotalValue,
			"total_invested":  result.TotalInvested,
		},
	})
}

// Withdraw removes an amount from the portfolio
// @Summary     Withdraw
// @Description Remove an amount from the portfolio. Overdraws are rejected and leave the portfolio unchanged.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WithdrawRequest true "Withdrawal details"
// @Success     200 {object} map[string]interface{} "Withdrawal applied"
// @Failure     400 {object} ErrorResponse "Invalid amount or insufficient balance"
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Router      /transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.ledgerService.Withdraw(userID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Withdrawal successful!", gin.H{
		"transaction": gin.H{
			"type":     result.Transaction.Type,
			"amount":   result.Transaction.Amount,
			"currency": Currency,
		},
		"portfolio": gin.H{
			"previous_value":  result.PreviousValue,
			"new_total_value": result.NewTotalValue,
		},
	})
}

// History lists the caller's transactions
// @Summary     Transaction history
// @Description Paginated money-movement history, newest first.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} map[string]interface{} "Transactions"
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Router      /transactions [get]
func (h *TransactionHandler) History(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	result, err := h.ledgerService.ListTransactions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"transactions": result.Data,
		"page":         result.Page,
		"page_size":    result.PageSize,
		"total_items":  result.TotalItems,
		"total_pages":  result.TotalPages,
		"currency":     Currency,
	})
}
