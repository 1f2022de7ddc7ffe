package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/internal/infrastructure/ratelimit"
	"learnhub/internal/shared/logger"
	"learnhub/internal/shared/utils"
)

// RateLimiter enforces a per-IP request budget on the auth endpoints.
// The backing store is redis when configured and an in-process window
// tracker otherwise.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  config,
		logger:  log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:ip:" + c.ClientIP()

		allowed, err := rl.limiter.Allow(key, rl.config)
		if err != nil {
			// A broken limiter backend must not take the API down.
			rl.logger.Warnw("rate limiter unavailable, admitting request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
