package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studify/studify-api/internal/auth"
	"github.com/studify/studify-api/internal/constants"
	apierrors "github.com/studify/studify-api/internal/errors"
)

// RequireAuth extracts and verifies the bearer token. Requests without
// a valid token are rejected before any resource is touched.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			apierrors.Unauthorized(c, "Acceso no autorizado")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			// The client should discard its stored token and re-authenticate
			apierrors.Unauthorized(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		// Store the verified identity in context for downstream handlers
		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetUserEmail retrieves the current user's email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}
