package httpserver

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/tracer"
)

// tracingMiddleware opens one span per request and records handler errors on
// it. The span context is pushed into the request so downstream code (and
// the context-aware logger) can correlate.
func tracingMiddleware(t *tracer.Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := t.StartSpan(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if len(c.Errors) > 0 {
			t.RecordErrorOnSpan(span, c.Errors.Last())
		}
	}
}

// metricsMiddleware feeds the request counter and latency histogram.
func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordRequestDuration(start, endpoint)
		m.IncrementRequests(strconv.Itoa(c.Writer.Status()/100) + "xx")
	}
}

// accessLogMiddleware logs one structured line per request.
func accessLogMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		}
		if c.Writer.Status() >= 500 {
			var err error
			if last := c.Errors.Last(); last != nil {
				err = last
			}
			log.ErrorWithContext(c.Request.Context(), "request failed", err, fields)
			return
		}
		log.InfoWithContext(c.Request.Context(), "request handled", nil, fields)
	}
}
