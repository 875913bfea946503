package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dia/internal/identity"
	"dia/internal/models"
	"dia/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plaintext password every fixture user is created with.
const TestPassword = "password123"

// CreateTestUser creates a Moderate-profile user with a unique username and a
// zeroed portfolio.
func CreateTestUser(t *testing.T, st store.Store) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithProfile(t, st, username, models.RiskModerate)
}

// CreateTestUserWithProfile creates a user with the given username and risk
// profile, plus a zeroed portfolio.
func CreateTestUserWithProfile(t *testing.T, st store.Store, username string, profile models.RiskProfile) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           identity.NewUserID(),
		Username:     username,
		PasswordHash: string(hash),
		RiskProfile:  profile,
		CreatedAt:    time.Now(),
	}
	if err := st.CreateUser(user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if err := st.CreatePortfolio(&models.Portfolio{UserID: user.ID}); err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return user
}

// SetTestBalance overwrites a user's portfolio figures.
func SetTestBalance(t *testing.T, st store.Store, userID string, totalValue, investedAmount float64, fundID *string) {
	t.Helper()

	if err := st.SavePortfolio(&models.Portfolio{
		UserID:         userID,
		TotalValue:     totalValue,
		InvestedAmount: investedAmount,
		FundID:         fundID,
	}); err != nil {
		t.Fatalf("failed to set test balance: %v", err)
	}
}

// IssueTestToken stores a fresh bearer token for the user and returns it.
func IssueTestToken(t *testing.T, st store.Store, userID string) string {
	t.Helper()

	token := &models.AuthToken{
		Token:     identity.NewToken(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := st.CreateToken(token); err != nil {
		t.Fatalf("failed to create test token: %v", err)
	}
	return token.Token
}
