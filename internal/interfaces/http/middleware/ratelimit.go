package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hsaberwal/serunner/internal/infrastructure/ratelimit"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

// RateLimitMiddleware limits authenticated callers per route group. Keys
// combine the scope and the user ID, so limits follow the user across
// instances sharing Redis.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit enforces policy under scope. A nil limiter or an empty policy lets
// every request through. Limiter errors fail open.
func (m *RateLimitMiddleware) Limit(scope string, policy ratelimit.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || m.limiter == nil || !policy.Enabled() {
			c.Next()
			return
		}

		userID, err := utils.GetUserID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		key := fmt.Sprintf("%s:%s", scope, userID)
		allowed, err := m.limiter.Allow(c.Request.Context(), key, policy)
		if err != nil {
			m.logger.Warnw("rate limit check failed, allowing request",
				"error", err,
				"scope", scope,
				"user_id", userID,
			)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("rate limit exceeded",
				"scope", scope,
				"user_id", userID,
				"per_minute", policy.RequestsPerMinute,
				"per_hour", policy.RequestsPerHour,
			)
			c.Header("Retry-After", strconv.Itoa(60))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
