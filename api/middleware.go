package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/documentterm/docrank/internal/metrics"
)

// RequestIDMiddleware assigns each request a UUID, stored in the context
// and echoed in the X-Request-ID response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	})
}

// MetricsMiddleware records request counts and latencies. A nil Metrics
// disables recording, which keeps handler tests free of the global
// Prometheus registry.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	})
}
