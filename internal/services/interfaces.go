package services

import (
	"dia/internal/funds"
	"dia/internal/models"
	"dia/internal/pagination"
)

// UserServicer defines the contract for registration and authentication.
type UserServicer interface {
	// Register creates a user together with a zeroed portfolio.
	Register(username, password string, riskProfile models.RiskProfile) (*models.User, error)
	// Login verifies credentials and issues a fresh opaque bearer token.
	Login(username, password string) (*models.User, *models.AuthToken, error)
	// ResolveToken maps a bearer token to the owning user id.
	ResolveToken(token string) (string, error)
	GetUserByID(id string) (*models.User, error)
}

// PortfolioView is a portfolio joined with its held fund's catalog details.
type PortfolioView struct {
	UserID         string
	TotalValue     float64
	InvestedAmount float64
	Last24hChange  float64
	Fund           *funds.Fund // nil until first investment
}

// MovementResult reports a balance mutation with the previous and new totals.
type MovementResult struct {
	Transaction   *models.Transaction
	Fund          *funds.Fund // nil for withdrawals with no fund of record
	PreviousValue float64
	NewTotalValue float64
	TotalInvested float64
}

// RoundUpResult extends MovementResult with the round-up computation inputs.
type RoundUpResult struct {
	MovementResult
	OriginalAmount float64
	RoundedTo      float64
	RoundUpAmount  float64
}

// LedgerServicer defines the contract for the balance-update core.
type LedgerServicer interface {
	Deposit(userID, fundID string, amount float64) (*MovementResult, error)
	RoundUp(userID, fundID string, transactionAmount float64) (*RoundUpResult, error)
	Withdraw(userID string, amount float64) (*MovementResult, error)
	GetPortfolio(userID string) (*PortfolioView, error)
	ListTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// Recommendation is a fund recommendation for a user's risk profile.
type Recommendation struct {
	RiskProfile models.RiskProfile
	Fund        funds.Fund
	Reason      string
}

// FundServicer defines the contract for catalog listing and recommendation.
type FundServicer interface {
	ListFunds() []funds.Fund
	Recommend(userID string) (*Recommendation, error)
}

// LeaderboardEntry is one ranked row. Placeholder rows are demo-mode filler
// and are flagged so clients can segregate them from genuine entries.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	Username      string  `json:"username"`
	TotalInvested float64 `json:"total_invested"`
	IsPlaceholder bool    `json:"is_placeholder"`
}

// LeaderboardServicer defines the contract for the investor leaderboard.
type LeaderboardServicer interface {
	TopInvestors() ([]LeaderboardEntry, error)
}
