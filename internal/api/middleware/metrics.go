package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"voice2text/internal/app/metrics"
)

// Metrics records request counts and latency per matched route. Unmatched
// paths (static files) are grouped under "static".
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "static"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
