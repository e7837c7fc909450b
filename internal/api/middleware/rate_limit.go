package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/redis"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// RateLimit applies a Redis sliding-window limit per client IP and
// route. A nil client or a Redis error degrades open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "too many requests, please retry later")
			c.Abort()
			return
		}

		c.Next()
	}
}
