package models

import "time"

// TransactionType represents the kind of money movement recorded in the log.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeRoundUp  TransactionType = "roundup"
)

// Transaction is an append-only record of a money-movement event. FundID is
// nil for withdrawals from a portfolio that never held a fund.
type Transaction struct {
	ID        string          `gorm:"primaryKey" json:"transaction_id"`
	UserID    string          `gorm:"index:idx_transactions_user_created;not null" json:"user_id"`
	Type      TransactionType `gorm:"not null" json:"type"`
	Amount    float64         `gorm:"not null" json:"amount"`
	FundID    *string         `json:"fund_id,omitempty"`
	CreatedAt time.Time       `gorm:"index:idx_transactions_user_created" json:"created_at"`
}
