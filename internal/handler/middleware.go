package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripcraft/tripcraft-api/internal/dto"
	"github.com/tripcraft/tripcraft-api/internal/service"
)

// ContextUserEmail is the gin context key holding the authenticated email.
// Handlers never trust a client-supplied user id; identity comes from here.
const ContextUserEmail = "userEmail"

// AuthMiddleware resolves the caller's identity from the jwt cookie and puts
// the email into the request context. Protected routes reject the request
// before any business logic runs.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(service.SessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{
				Message: "Authentication required",
			})
			c.Abort()
			return
		}

		email, err := authService.ResolveSubject(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, email)
		c.Next()
	}
}
