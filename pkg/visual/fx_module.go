package visual

import (
	"context"

	"go.uber.org/fx"

	"github.com/helixrag/modelserve/pkg/httpserver"
	"github.com/helixrag/modelserve/pkg/logger"
)

// FXModule wires the visual embedding service into Fx.
var FXModule = fx.Module("visual",
	fx.Provide(
		NewConfig,
		NewRunnerProvider,
		NewService,
		NewHandler,
		ProvideServerConfig,
	),
	fx.Invoke(
		RegisterRoutes,
		RegisterStartupLoad,
	),
)

// ProvideServerConfig derives the API listener settings from the service
// config.
func ProvideServerConfig(cfg *Config) httpserver.Config {
	return httpserver.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		ServiceName: ServiceName,
	}
}

// RegisterStartupLoad preloads the model in the background once the
// application starts. Requests arriving before it completes get 503; a
// failed fallback load takes the process down.
func RegisterStartupLoad(lc fx.Lifecycle, service *Service, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := service.Load(context.Background()); err != nil {
					log.Fatal("model load failed at startup", err, nil)
				}
			}()
			return nil
		},
	})
}
