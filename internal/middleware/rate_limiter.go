package middleware

import (
	"fmt"
	"math"
	"net/http"

	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		seconds := int(math.Ceil(retryAfter.Seconds()))
		ctx.Header("Retry-After", fmt.Sprintf("%d", seconds))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", nil, gin.H{"retryAfter": seconds})
		return
	}

	ctx.Next()
}
