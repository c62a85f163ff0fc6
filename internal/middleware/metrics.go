package middleware

import (
	"strconv"
	"time"

	"github.com/SeakMengs/PropDesk/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Records every request under its route pattern, unmatched routes share one label
func (m Middleware) MetricsMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()

	path := ctx.FullPath()
	if path == "" {
		path = "unmatched"
	}
	metrics.ObserveHTTPRequest(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status()), time.Since(start))
}
