// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy_backend/internal/feature/auth/domain"
	"energy_backend/internal/feature/auth/transport/http/dto"
)

// AuthUsecase defines the authentication operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// CreateSession verifies a credential pair and issues a session token.
	CreateSession(username, passwordHash string) (string, error)
	// Register adds a new credential pair to the registry.
	Register(username, passwordHash string) error
}

// AuthHandler handles the legacy login and registration endpoints.
//
// Both endpoints take query parameters on GET and always answer 200 with a
// status/Message envelope; failures are distinguished only by the message
// text. This mirrors the reference wire contract exactly, including the
// empty-object response when a parameter is missing.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the given usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles GET /login?Username=...&P_Hash=...
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.Query("Username")
	passwordHash := c.Query("P_Hash")
	if username == "" || passwordHash == "" {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	token, err := h.auth.CreateSession(username, passwordHash)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		slog.Warn("login failed", "username", username, "remote_addr", c.ClientIP(), "reason", "unknown user")
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "ERROR", Message: "User not found"})
	case errors.Is(err, domain.ErrPasswordIncorrect):
		slog.Warn("login failed", "username", username, "remote_addr", c.ClientIP(), "reason", "bad password")
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "ERROR", Message: "Password Incorrect"})
	case err != nil:
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "ERROR", Message: "Login failed"})
	default:
		slog.Info("user login successful", "username", username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "OK", Message: "Login Successful", SessionID: token})
	}
}

// Register handles GET /register_user?Username=...&P_Hash=...
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.Query("Username")
	passwordHash := c.Query("P_Hash")
	if username == "" || passwordHash == "" {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	if err := h.auth.Register(username, passwordHash); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			c.JSON(http.StatusOK, dto.StatusResponse{Status: "ERROR", Message: "User already exists"})
			return
		}
		slog.Error("registration failed", "username", username, "error", err)
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "ERROR", Message: "Registration failed"})
		return
	}

	slog.Info("user registered", "username", username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "OK", Message: "User added"})
}
