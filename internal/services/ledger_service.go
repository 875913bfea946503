package services

import (
	"errors"
	"math"
	"time"

	apperrors "dia/internal/errors"
	"dia/internal/funds"
	"dia/internal/identity"
	"dia/internal/models"
	"dia/internal/pagination"
	"dia/internal/store"
)

// ledgerService implements the balance-update core. Every mutation is a
// read-modify-write of the portfolio plus an append to the transaction log,
// executed inside Store.Transact so concurrent requests for the same user
// cannot lose updates.
type ledgerService struct {
	st store.Store
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(st store.Store) LedgerServicer {
	return &ledgerService{st: st}
}

// appError passes AppErrors through unchanged and wraps anything else as an
// internal error. Needed because errors returned out of Transact cross the
// storage boundary.
func appError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// Deposit adds amount to the user's portfolio and records it against the
// given fund. The mocked 24h change is a deterministic function of the fund's
// annual-return constant, not a market figure.
func (s *ledgerService) Deposit(userID, fundID string, amount float64) (*MovementResult, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	fund, ok := funds.Get(fundID)
	if !ok {
		return nil, apperrors.ErrFundNotFound
	}

	var result *MovementResult
	err := s.st.Transact(func(tx store.Store) error {
		portfolio, err := loadOrInitPortfolio(tx, userID)
		if err != nil {
			return err
		}

		previous := portfolio.TotalValue
		portfolio.TotalValue += amount
		portfolio.InvestedAmount += amount
		portfolio.FundID = &fund.ID
		portfolio.Last24hChange = round2(fund.AnnualReturn / 365 * 1.5)

		if err := tx.SavePortfolio(portfolio); err != nil {
			return err
		}

		transaction := &models.Transaction{
			ID:        identity.NewTransactionID(),
			UserID:    userID,
			Type:      models.TransactionTypeDeposit,
			Amount:    amount,
			FundID:    &fund.ID,
			CreatedAt: time.Now(),
		}
		if err := tx.AppendTransaction(transaction); err != nil {
			return err
		}

		result = &MovementResult{
			Transaction:   transaction,
			Fund:          &fund,
			PreviousValue: round2(previous),
			NewTotalValue: round2(portfolio.TotalValue),
			TotalInvested: round2(portfolio.InvestedAmount),
		}
		return nil
	})
	if err != nil {
		return nil, appError(err)
	}
	return result, nil
}

// RoundUp invests the round-up of a card transaction: the difference to the
// next whole unit, or 1.0 when the amount is already whole.
func (s *ledgerService) RoundUp(userID, fundID string, transactionAmount float64) (*RoundUpResult, error) {
	if transactionAmount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	fund, ok := funds.Get(fundID)
	if !ok {
		return nil, apperrors.ErrFundNotFound
	}

	roundUp, roundedTo := roundUpAmount(transactionAmount)

	var result *RoundUpResult
	err := s.st.Transact(func(tx store.Store) error {
		portfolio, err := loadOrInitPortfolio(tx, userID)
		if err != nil {
			return err
		}

		previous := portfolio.TotalValue
		portfolio.TotalValue += roundUp
		portfolio.InvestedAmount += roundUp
		portfolio.FundID = &fund.ID
		portfolio.Last24hChange = round2((fund.AnnualReturn / 365) * (1 + roundUp/100))

		if err := tx.SavePortfolio(portfolio); err != nil {
			return err
		}

		transaction := &models.Transaction{
			ID:        identity.NewTransactionID(),
			UserID:    userID,
			Type:      models.TransactionTypeRoundUp,
			Amount:    roundUp,
			FundID:    &fund.ID,
			CreatedAt: time.Now(),
		}
		if err := tx.AppendTransaction(transaction); err != nil {
			return err
		}

		result = &RoundUpResult{
			MovementResult: MovementResult{
				Transaction:   transaction,
				Fund:          &fund,
				PreviousValue: round2(previous),
				NewTotalValue: round2(portfolio.TotalValue),
				TotalInvested: round2(portfolio.InvestedAmount),
			},
			OriginalAmount: transactionAmount,
			RoundedTo:      roundedTo,
			RoundUpAmount:  roundUp,
		}
		return nil
	})
	if err != nil {
		return nil, appError(err)
	}
	return result, nil
}

// Withdraw removes amount from the portfolio. The total value never goes
// negative: overdraws are rejected and leave the portfolio unchanged.
// InvestedAmount clamps at zero independently of TotalValue; it is a display
// tracking figure, not a strict subset of the balance, so the two may diverge
// after repeated withdrawals below the invested basis.
func (s *ledgerService) Withdraw(userID string, amount float64) (*MovementResult, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	var result *MovementResult
	err := s.st.Transact(func(tx store.Store) error {
		portfolio, err := tx.GetPortfolio(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.ErrInsufficientBalance
			}
			return err
		}
		if amount > portfolio.TotalValue {
			return apperrors.ErrInsufficientBalance
		}

		previous := portfolio.TotalValue
		portfolio.TotalValue -= amount
		portfolio.InvestedAmount = math.Max(0, portfolio.InvestedAmount-amount)

		if err := tx.SavePortfolio(portfolio); err != nil {
			return err
		}

		transaction := &models.Transaction{
			ID:        identity.NewTransactionID(),
			UserID:    userID,
			Type:      models.TransactionTypeWithdraw,
			Amount:    amount,
			FundID:    portfolio.FundID,
			CreatedAt: time.Now(),
		}
		if err := tx.AppendTransaction(transaction); err != nil {
			return err
		}

		var fund *funds.Fund
		if portfolio.FundID != nil {
			if f, ok := funds.Get(*portfolio.FundID); ok {
				fund = &f
			}
		}
		result = &MovementResult{
			Transaction:   transaction,
			Fund:          fund,
			PreviousValue: round2(previous),
			NewTotalValue: round2(portfolio.TotalValue),
			TotalInvested: round2(portfolio.InvestedAmount),
		}
		return nil
	})
	if err != nil {
		return nil, appError(err)
	}
	return result, nil
}

// GetPortfolio returns the user's position joined with fund details from the
// catalog. A user without a portfolio row reads as a zeroed position.
func (s *ledgerService) GetPortfolio(userID string) (*PortfolioView, error) {
	portfolio, err := s.st.GetPortfolio(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &PortfolioView{UserID: userID}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := &PortfolioView{
		UserID:         userID,
		TotalValue:     round2(portfolio.TotalValue),
		InvestedAmount: round2(portfolio.InvestedAmount),
		Last24hChange:  portfolio.Last24hChange,
	}
	if portfolio.FundID != nil {
		if fund, ok := funds.Get(*portfolio.FundID); ok {
			view.Fund = &fund
		}
	}
	return view, nil
}

// ListTransactions returns the user's money-movement history, newest first.
func (s *ledgerService) ListTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	transactions, total, err := s.st.ListTransactions(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	response := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &response, nil
}

// loadOrInitPortfolio fetches the user's portfolio, starting a zeroed one for
// users whose portfolio row is missing.
func loadOrInitPortfolio(tx store.Store, userID string) (*models.Portfolio, error) {
	portfolio, err := tx.GetPortfolio(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &models.Portfolio{UserID: userID}, nil
		}
		return nil, err
	}
	return portfolio, nil
}
