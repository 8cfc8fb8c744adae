package middleware

import (
	"net/http"
	"strings"

	"editorial-platform/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit 全局令牌桶限流
func RateLimit(limitConfig config.Limit) gin.HandlerFunc {
	if !limitConfig.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := int(limitConfig.Burst)
	if burst <= 0 {
		burst = int(limitConfig.Requests)
	}
	// rate.Limiter 自身是并发安全的
	limiter := rate.NewLimiter(rate.Limit(limitConfig.Requests), burst)

	return func(c *gin.Context) {
		for _, path := range limitConfig.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, path) {
				c.Next()
				return
			}
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "请求过于频繁，请稍后再试",
			})
			return
		}

		c.Next()
	}
}
