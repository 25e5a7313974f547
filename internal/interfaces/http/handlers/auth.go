// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/account"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	accounts *account.Service
	logger   logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *account.Service, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// LoginRequest is the login form
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=60"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the registration form
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnprocessableEntity || apiErr.StatusCode == http.StatusBadRequest) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Registration was rejected; the username or email may already be taken",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    profile,
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	profile, err := h.accounts.Login(c.Request.Context(), sess, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// a signed-in session never keeps its guest id
	if err := middleware.RotateSession(c); err != nil {
		sess.SignOut()
		h.logger.WithError(err).WithField("session_id", sess.ID).Error("Failed to rotate session on login")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    profile,
	})
}

// Logout handles user logout. The session is signed out even when the backend call fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.accounts.Logout(c.Request.Context(), middleware.GetSession(c)); err != nil {
		h.logger.WithError(err).Warn("Backend logout failed, session signed out locally")
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
