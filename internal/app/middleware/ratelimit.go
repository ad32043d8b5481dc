package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ratelimit"

	"github.com/gin-gonic/gin"
)

// ClientIP extracts the originating address, preferring proxy headers the
// way the edge deployment sets them.
func ClientIP(gCtx *gin.Context) string {
	if forwarded := gCtx.GetHeader("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if realIP := gCtx.GetHeader("X-Real-Ip"); realIP != "" {
		return realIP
	}
	if ip := gCtx.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// WithRateLimit throttles an operation type per client IP using a fixed
// window. Exceeding the budget answers 429 with the remaining window time.
func WithRateLimit(limiter *ratelimit.Limiter, operation string, limit int, window time.Duration) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		key := fmt.Sprintf("%s:%s", operation, ClientIP(gCtx))
		decision := limiter.Check(key, limit, window)
		if !decision.Allowed {
			gCtx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":       "fail",
				"message":      "too many requests",
				"retryAfterMs": decision.RetryAfter.Milliseconds(),
			})
			return
		}
		gCtx.Next()
	}
}
