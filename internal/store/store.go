// Package store defines the keyed-record storage interface behind the ledger
// operations, with a persistent PostgreSQL implementation and a transient
// in-memory implementation resolved at process startup via configuration.
package store

import (
	"errors"

	"dia/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. Both
// implementations return this same sentinel so callers never branch on
// backend-specific errors.
var ErrNotFound = errors.New("record not found")

// Store is the storage contract shared by the ledger operations. Mutating
// operations that span multiple records run inside Transact.
type Store interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)

	CreateToken(token *models.AuthToken) error
	GetToken(token string) (*models.AuthToken, error)

	CreatePortfolio(p *models.Portfolio) error
	GetPortfolio(userID string) (*models.Portfolio, error)
	SavePortfolio(p *models.Portfolio) error
	ListPortfolios() ([]models.Portfolio, error)

	AppendTransaction(t *models.Transaction) error
	// ListTransactions returns the user's transactions newest first along with
	// the total count for the user.
	ListTransactions(userID string, limit, offset int) ([]models.Transaction, int64, error)

	// Transact runs fn with a Store whose writes are applied atomically with
	// respect to other callers. The postgres implementation uses a database
	// transaction; the memory implementation holds the store-wide write lock.
	Transact(fn func(Store) error) error

	// Ping reports store connectivity for health checks.
	Ping() error
}
