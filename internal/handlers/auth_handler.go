package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dia/internal/models"
	"dia/internal/services"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,max=64"`
	Password    string `json:"password" binding:"required,max=128"`
	RiskProfile string `json:"risk_profile" binding:"required,risk_profile"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Create a user with a username, password, and risk profile. A zeroed portfolio is created alongside.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} map[string]interface{} "User registered"
// @Failure     400 {object} ErrorResponse "Missing field or invalid risk profile"
// @Failure     409 {object} ErrorResponse "Username already exists"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.Register(req.Username, req.Password, models.RiskProfile(req.RiskProfile))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", gin.H{
		"user_id":      user.ID,
		"username":     user.Username,
		"risk_profile": user.RiskProfile,
	})
}

// Login handles user login
// @Summary     Login
// @Description Verify credentials and issue a new opaque bearer token.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User credentials"
// @Success     200 {object} map[string]interface{} "Token issued"
// @Failure     400 {object} ErrorResponse "Missing field"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, token, err := h.userService.Login(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Login successful", gin.H{
		"user_id":    user.ID,
		"token":      token.Token,
		"token_type": "Bearer",
	})
}
