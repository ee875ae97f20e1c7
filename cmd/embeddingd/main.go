// Command embeddingd serves the text embedding API.
package main

import (
	"go.uber.org/fx"

	"github.com/helixrag/modelserve/pkg/embedder"
	"github.com/helixrag/modelserve/pkg/httpserver"
	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/tracer"
)

func main() {
	fx.New(
		fx.Provide(
			func() logger.Config { return logger.NewConfig(embedder.ServiceName) },
			func() metrics.Config { return metrics.NewConfig(embedder.ServiceName) },
			func() tracer.Config { return tracer.NewConfig(embedder.ServiceName) },
			func(l *logger.Logger) tracer.Logger { return l },
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		httpserver.FXModule,
		embedder.FXModule,
	).Run()
}
