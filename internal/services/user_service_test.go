package services

import (
	"strings"
	"testing"

	"dia/internal/models"
	"dia/internal/store"
	"dia/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)

			user, err := svc.Register("alice", "secret123", models.RiskModerate)
			testutil.AssertNoError(t, err)

			if !strings.HasPrefix(user.ID, "user_") {
				t.Errorf("expected user id with user_ prefix, got %s", user.ID)
			}
			if user.Username != "alice" {
				t.Errorf("expected username alice, got %s", user.Username)
			}
			if user.PasswordHash == "secret123" {
				t.Error("password stored in plaintext")
			}

			// Registration must create a zeroed portfolio alongside the user.
			portfolio, err := st.GetPortfolio(user.ID)
			testutil.AssertNoError(t, err)
			if portfolio.TotalValue != 0 || portfolio.InvestedAmount != 0 {
				t.Errorf("expected zeroed portfolio, got total=%v invested=%v",
					portfolio.TotalValue, portfolio.InvestedAmount)
			}
			if portfolio.FundID != nil {
				t.Errorf("expected no held fund, got %v", *portfolio.FundID)
			}
		})
	})

	t.Run("duplicate_username", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)

			_, err := svc.Register("dup", "secret123", models.RiskModerate)
			testutil.AssertNoError(t, err)

			_, err = svc.Register("dup", "other456", models.RiskAggressive)
			testutil.AssertAppError(t, err, "USERNAME_EXISTS")
		})
	})

	t.Run("missing_fields", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)

			_, err := svc.Register("", "secret123", models.RiskModerate)
			testutil.AssertAppError(t, err, "VALIDATION_ERROR")

			_, err = svc.Register("bob", "", models.RiskModerate)
			testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		})
	})

	t.Run("unknown_risk_profile", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)

			_, err := svc.Register("carol", "secret123", models.RiskProfile("Reckless"))
			testutil.AssertAppError(t, err, "INVALID_RISK_PROFILE")

			// The failed registration must not have written a user.
			_, err = st.GetUserByUsername("carol")
			if err != store.ErrNotFound {
				t.Errorf("expected ErrNotFound for carol, got %v", err)
			}
		})
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)
			created := testutil.CreateTestUserWithProfile(t, st, "dave", models.RiskConservative)

			user, token, err := svc.Login("dave", testutil.TestPassword)
			testutil.AssertNoError(t, err)

			if user.ID != created.ID {
				t.Errorf("expected user id %s, got %s", created.ID, user.ID)
			}
			if !strings.HasPrefix(token.Token, "token_") {
				t.Errorf("expected token with token_ prefix, got %s", token.Token)
			}
			if token.UserID != created.ID {
				t.Errorf("token owned by %s, expected %s", token.UserID, created.ID)
			}
		})
	})

	t.Run("unknown_user", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)

			_, _, err := svc.Login("ghost", "whatever")
			testutil.AssertAppError(t, err, "USER_NOT_FOUND")
		})
	})

	t.Run("wrong_password", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)
			testutil.CreateTestUserWithProfile(t, st, "erin", models.RiskModerate)

			_, _, err := svc.Login("erin", "not-the-password")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		})
	})

	t.Run("multiple_live_tokens", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)
			created := testutil.CreateTestUserWithProfile(t, st, "frank", models.RiskModerate)

			_, first, err := svc.Login("frank", testutil.TestPassword)
			testutil.AssertNoError(t, err)
			_, second, err := svc.Login("frank", testutil.TestPassword)
			testutil.AssertNoError(t, err)

			if first.Token == second.Token {
				t.Error("expected a fresh token per login")
			}
			// Both tokens stay resolvable.
			for _, tok := range []string{first.Token, second.Token} {
				userID, err := svc.ResolveToken(tok)
				testutil.AssertNoError(t, err)
				if userID != created.ID {
					t.Errorf("token resolved to %s, expected %s", userID, created.ID)
				}
			}
		})
	})
}

func TestResolveToken(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)
			user := testutil.CreateTestUser(t, st)
			token := testutil.IssueTestToken(t, st, user.ID)

			userID, err := svc.ResolveToken(token)
			testutil.AssertNoError(t, err)
			if userID != user.ID {
				t.Errorf("expected %s, got %s", user.ID, userID)
			}
		})
	})

	t.Run("unknown_token", func(t *testing.T) {
		testutil.ForEachStore(t, func(t *testing.T, st store.Store) {
			svc := NewUserService(st)

			_, err := svc.ResolveToken("token_000000000000000000000000")
			testutil.AssertAppError(t, err, "AUTH_TOKEN_INVALID")
		})
	})
}
