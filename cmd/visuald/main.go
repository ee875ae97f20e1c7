// Command visuald serves the visual embedding API.
package main

import (
	"go.uber.org/fx"

	"github.com/helixrag/modelserve/pkg/httpserver"
	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/tracer"
	"github.com/helixrag/modelserve/pkg/visual"
)

func main() {
	fx.New(
		fx.Provide(
			func() logger.Config { return logger.NewConfig(visual.ServiceName) },
			func() metrics.Config { return metrics.NewConfig(visual.ServiceName) },
			func() tracer.Config { return tracer.NewConfig(visual.ServiceName) },
			func(l *logger.Logger) tracer.Logger { return l },
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		httpserver.FXModule,
		visual.FXModule,
	).Run()
}
