// Package errors provides the structured error types used across the DIA API.
// Service-layer code returns AppErrors so that every failure reaches the client
// as a stable machine-readable code without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation and registration errors.
var (
	ErrValidation         = &AppError{Code: "VALIDATION_ERROR", Message: "Missing or malformed request field", StatusCode: http.StatusBadRequest}
	ErrInvalidRiskProfile = &AppError{Code: "INVALID_RISK_PROFILE", Message: "Invalid risk_profile. Must be one of: Conservative, Moderate, Aggressive", StatusCode: http.StatusBadRequest}
	ErrUsernameExists     = &AppError{Code: "USERNAME_EXISTS", Message: "Username already exists", StatusCode: http.StatusConflict}
)

// Authentication errors.
var (
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid password", StatusCode: http.StatusUnauthorized}
	ErrAuthTokenMissing   = &AppError{Code: "AUTH_TOKEN_MISSING", Message: "Authentication token is missing", StatusCode: http.StatusUnauthorized}
	ErrAuthTokenInvalid   = &AppError{Code: "AUTH_TOKEN_INVALID", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
)

// Ledger errors.
var (
	ErrUserNotFound        = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrFundNotFound        = &AppError{Code: "FUND_NOT_FOUND", Message: "Fund not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount       = &AppError{Code: "INVALID_AMOUNT", Message: "Invalid amount", StatusCode: http.StatusBadRequest}
	ErrInsufficientBalance = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient balance", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
