// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"dia/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("risk_profile", validateRiskProfile)
	}
}

func validateRiskProfile(fl validator.FieldLevel) bool {
	return models.RiskProfile(fl.Field().String()).Valid()
}
