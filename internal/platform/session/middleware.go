// Package session provides the Gin middleware guarding routes behind a valid
// session token.
package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUsername is the Gin context key the middleware stores the caller under.
const ContextUsername = "username"

// Validator checks a session token against the current day.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type Validator interface {
	CheckValid(token string) bool
}

// AuthRequired returns a Gin middleware that rejects requests without a valid
// same-day session token in the Authorization header. Tokens from a previous
// UTC day fail the validity check by construction; there is nothing to expire
// server-side.
func AuthRequired(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		if !validator.CheckValid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Next()
	}
}
