package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"brandsite-backend/internal/shared/response"
	"brandsite-backend/pkg/cache"
	"brandsite-backend/pkg/logger"
)

// RateLimit is a fixed-window limiter keyed on client IP, backed by the
// shared cache so every API instance counts against the same window.
// When the store is unreachable the limiter fails open: throttling is
// best-effort and must not take down reads.
func RateLimit(store cache.Cache, name string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limit store unavailable", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				logger.Warn("rate limit expire failed", err)
			}
		}

		if count > max {
			response.TooManyRequests(c, "Too many requests from this IP, please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
