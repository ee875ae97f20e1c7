package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into Fx. A logger.Config must be available in
// the container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered entries on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync can fail on stderr; the process is exiting either way.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
