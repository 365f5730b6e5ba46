package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID keys the per-request id in the gin context; the logging
// and recovery middleware read it back for correlation.
const CtxRequestID = "request_id"

// RequestID assigns each request an id, reusing the caller's
// X-Request-ID when supplied so traces line up across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(CtxRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
