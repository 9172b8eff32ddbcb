package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
}

// RateLimit sheds load across the whole intake surface. One shared limiter is
// enough at clinic volumes; there is no per-client bookkeeping.
func RateLimit(config RateLimiterConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(config.Rate, config.Burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
