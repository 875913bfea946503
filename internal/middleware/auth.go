package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key the authenticated user id is stored under.
const UserIDKey = "userID"

// TokenResolver resolves an opaque bearer token to a user id.
type TokenResolver interface {
	ResolveToken(token string) (string, error)
}

// TokenAuth guards protected routes. It requires an Authorization header,
// strips the "Bearer " prefix if present, resolves the token against the
// token store, and injects the owning user id into the request context.
// A missing header is rejected before any store access.
func TokenAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication token is missing",
				"code":    "AUTH_TOKEN_MISSING",
			})
			return
		}

		userID, err := resolver.ResolveToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
				"code":    "AUTH_TOKEN_INVALID",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
