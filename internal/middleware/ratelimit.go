package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/roar-media/core/internal/pkg/response"
)

const (
	rateLimitMax    = 50
	rateLimitWindow = time.Second
)

// RateLimit returns a middleware that enforces a per-IP sliding-window
// limit on unauthenticated traffic. Authenticated requests pass through.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("roar:rate_limit:%s:%d", ip, time.Now().Unix())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis trouble must not take the site down.
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, rateLimitWindow+time.Second)
		}

		if count > rateLimitMax {
			response.TooManyRequests(c, "slow down")
			return
		}
		c.Next()
	}
}
