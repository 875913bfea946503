package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dia/internal/errors"
	"dia/internal/store"
)

// ServiceVersion is reported by the banner and health endpoints.
const ServiceVersion = "1.0.0"

// SystemHandler serves health, the service banner, and the mocked B2B
// partnership status.
type SystemHandler struct {
	st      store.Store
	backend string
}

// NewSystemHandler creates a new SystemHandler. backend names the configured
// storage backend for the health payload.
func NewSystemHandler(st store.Store, backend string) *SystemHandler {
	return &SystemHandler{st: st, backend: backend}
}

// Health reports service and store health
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{} "Health status"
// @Router      /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "healthy"
	if err := h.st.Ping(); err != nil {
		dbStatus = "unhealthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "healthy",
		"database":  dbStatus,
		"backend":   h.backend,
		"service":   "DIA - Digital Investment Accelerator",
		"version":   ServiceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Index returns the service banner.
func (h *SystemHandler) Index(c *gin.Context) {
	respondOK(c, http.StatusOK, "Welcome to DIA - Digital Investment Accelerator API", gin.H{
		"version": ServiceVersion,
		"backend": h.backend,
	})
}

// NotFound is the catch-all for unknown routes.
func (h *SystemHandler) NotFound(c *gin.Context) {
	respondWithError(c, apperrors.ErrNotFound)
}

// B2BStatus returns the mocked white-label partnership status.
func (h *SystemHandler) B2BStatus(c *gin.Context) {
	respondOK(c, http.StatusOK, "", gin.H{
		"partnership_status": "Operational",
		"partner_bank":       "Mock National Bank of Azerbaijan",
		"api_version":        "v1.0",
		"integration_type":   "White-Label",
		"services": gin.H{
			"transaction_monitoring": "Active",
			"round_up_processing":    "Active",
			"fund_transfers":         "Active",
			"kyc_verification":       "Active",
		},
		"uptime_percent": 99.9,
		"last_sync":      time.Now().Format(time.RFC3339),
	})
}
