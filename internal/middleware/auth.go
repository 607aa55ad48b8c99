package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"food-ordering-assistant/pkg/response"
)

// UserIDKey is the context key carrying the verified token subject.
const UserIDKey = "user_id"

// Auth requires a verifiable bearer token and stores its subject on the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			response.Unauthorized(c, "authorization token is required")
			c.Abort()
			return
		}

		claims, err := m.gate.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
