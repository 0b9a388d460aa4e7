package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const userTokenKey = "user_token"

// RequireAuth extracts the bearer token every downstream call needs. Token
// validation happens upstream; a missing header is rejected here.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			slog.WarnContext(c.Request.Context(), "missing authorization header",
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(userTokenKey, token)
		c.Next()
	}
}

// UserToken returns the bearer token stored by RequireAuth.
func UserToken(c *gin.Context) string {
	return c.GetString(userTokenKey)
}
