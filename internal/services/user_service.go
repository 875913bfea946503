package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "dia/internal/errors"
	"dia/internal/identity"
	"dia/internal/models"
	"dia/internal/store"
)

// userService handles registration, login, and token resolution.
type userService struct {
	st store.Store
}

// NewUserService creates a new UserServicer.
func NewUserService(st store.Store) UserServicer {
	return &userService{st: st}
}

// Register creates a new user and a zeroed portfolio. Both writes happen in a
// single Transact so a failure cannot leave a user without a portfolio.
func (s *userService) Register(username, password string, riskProfile models.RiskProfile) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "username and password are required")
	}
	if !riskProfile.Valid() {
		return nil, apperrors.ErrInvalidRiskProfile
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		ID:           identity.NewUserID(),
		Username:     username,
		PasswordHash: string(hash),
		RiskProfile:  riskProfile,
		CreatedAt:    time.Now(),
	}

	// The uniqueness check runs inside the transaction so a racing duplicate
	// registration comes back as a conflict, not a constraint violation.
	err = s.st.Transact(func(tx store.Store) error {
		if _, err := tx.GetUserByUsername(username); err == nil {
			return apperrors.ErrUsernameExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := tx.CreateUser(user); err != nil {
			return err
		}
		return tx.CreatePortfolio(&models.Portfolio{UserID: user.ID})
	})
	if err != nil {
		return nil, appError(err)
	}

	return user, nil
}

// Login verifies the password against the stored bcrypt hash and issues a new
// opaque token. Users may hold any number of live tokens.
func (s *userService) Login(username, password string) (*models.User, *models.AuthToken, error) {
	user, err := s.st.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token := &models.AuthToken{
		Token:     identity.NewToken(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.st.CreateToken(token); err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, token, nil
}

// ResolveToken looks the token up in the token store and returns the owning
// user id.
func (s *userService) ResolveToken(token string) (string, error) {
	t, err := s.st.GetToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperrors.ErrAuthTokenInvalid
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return t.UserID, nil
}

// GetUserByID retrieves a user by id.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	user, err := s.st.GetUserByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}
