package middleware

import (
	"github.com/gin-gonic/gin"

	"brandsite-backend/internal/shared/response"
)

// AdminOnly requires the caller resolved by Auth to hold the admin
// role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || r != "admin" {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
