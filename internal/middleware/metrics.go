// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"florify-catalog/internal/metrics"
)

// Routes excluded from HTTP metrics.
var unmeasured = map[string]struct{}{
	"/metrics": {},
	"/live":    {},
	"/ready":   {},
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// It tracks:
// - Total requests by method, path, and status code
// - Request duration histogram
// - Requests currently in flight
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := unmeasured[c.FullPath()]; skip {
			c.Next()
			return
		}

		start := time.Now()

		// Track in-flight requests
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()

		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
