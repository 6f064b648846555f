package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tripcraft/tripcraft-api/internal/dto"
	"github.com/tripcraft/tripcraft-api/internal/repository"
	"github.com/tripcraft/tripcraft-api/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService  service.AuthService
	tokenTTL     time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenTTL:     tokenTTL,
		secureCookie: secureCookie,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	if err := h.authService.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ServerErrorResponse{
			Message: "Internal server error: " + err.Error(),
			Status:  "error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User registered successfully"})
}

// Login handles user login and sets the jwt cookie on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication failed"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ServerErrorResponse{
				Message: "Internal server error: " + err.Error(),
				Status:  "error",
			})
		}
		return
	}

	cookie := service.NewSessionCookie(result.Token, h.tokenTTL, h.secureCookie)
	http.SetCookie(c.Writer, cookie.HTTPCookie())

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Name:    result.Name,
	})
}

// Status reports whether the request carries a valid identity. Any
// validation failure answers authenticated=false, never an error.
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie(service.SessionCookieName)
	if err != nil {
		c.String(http.StatusUnauthorized, "not authenticated")
		return
	}

	if !h.authService.CheckStatus(c.Request.Context(), token) {
		c.JSON(http.StatusUnauthorized, dto.StatusResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Authenticated: true})
}

// Logout overwrites the jwt cookie with an immediately-expiring one
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie := service.ExpiredSessionCookie(h.secureCookie)
	http.SetCookie(c.Writer, cookie.HTTPCookie())

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully."})
}
