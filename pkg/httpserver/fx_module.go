package httpserver

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/helixrag/modelserve/pkg/logger"
)

// FXModule wires the API server into Fx. An httpserver.Config must be
// available in the container; handlers attach their routes with an
// fx.Invoke that takes the *gin.Engine.
var FXModule = fx.Module("httpserver",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the API listener on application start and
// drains it on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, cfg Config, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			go func() {
				log.Info("api server listening", nil, map[string]interface{}{
					"address": server.Addr,
					"service": cfg.ServiceName,
				})
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("api server terminated", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
