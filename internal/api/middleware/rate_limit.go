package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/pkg/redis"
	"github.com/Emmanu-hec2a/formManagement/pkg/response"
)

// RateLimit caps requests per client IP on the drafting routes, which fan out
// to a paid backend. With no Redis configured (rdb nil) it is a no-op, and a
// Redis fault lets the request through rather than blocking drafting.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP() + ":" + c.FullPath()
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 42900, "too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
