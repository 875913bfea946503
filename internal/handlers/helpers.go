package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "dia/internal/errors"
	"dia/internal/logger"
	"dia/internal/middleware"
)

// Currency is the single currency every figure in the API is denominated in.
const Currency = "AZN"

// currentUserID extracts the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", apperrors.ErrAuthTokenMissing
	}
	return userID.(string), nil
}

// bindError maps a gin binding failure to the right AppError: a failed
// risk_profile validation has its own stable code, a non-numeric amount
// field is an invalid amount, everything else is a generic validation error
// carrying the binding message.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "risk_profile" {
				return apperrors.ErrInvalidRiskProfile
			}
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "amount", "transaction_amount":
			return apperrors.ErrInvalidAmount
		}
	}

	return apperrors.WithMessage(apperrors.ErrValidation, err.Error())
}

// respondOK writes a success envelope.
func respondOK(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondWithError writes the error envelope. If the error is an *AppError it
// uses the error's status code, code, and message. Otherwise it logs the
// unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"success": false,
			"error":   appErr.Message,
			"code":    appErr.Code,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   apperrors.ErrInternalServer.Message,
		"code":    apperrors.ErrInternalServer.Code,
	})
}

// ErrorResponse represents an error envelope (documentation only).
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}
