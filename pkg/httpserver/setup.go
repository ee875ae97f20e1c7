package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/tracer"
)

// NewEngine builds the gin engine shared by a service's handlers: release
// mode, panic recovery, then tracing, metrics, and access-log middleware in
// that order, so spans cover the full handler and metrics see the final
// status code.
func NewEngine(log *logger.Logger, m *metrics.Metrics, t *tracer.Tracer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		tracingMiddleware(t),
		metricsMiddleware(m),
		accessLogMiddleware(log),
	)
	return engine
}

// NewServer wraps the engine in an http.Server bound to the configured
// address. Write and idle timeouts are deliberately left unset: a single
// inference call may run for minutes on CPU and there is no handler-level
// cancellation. Only slow request headers are bounded.
func NewServer(cfg Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
