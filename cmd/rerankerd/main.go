// Command rerankerd serves the cross-encoder reranking API.
package main

import (
	"go.uber.org/fx"

	"github.com/helixrag/modelserve/pkg/httpserver"
	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/reranker"
	"github.com/helixrag/modelserve/pkg/tracer"
)

func main() {
	fx.New(
		fx.Provide(
			func() logger.Config { return logger.NewConfig(reranker.ServiceName) },
			func() metrics.Config { return metrics.NewConfig(reranker.ServiceName) },
			func() tracer.Config { return tracer.NewConfig(reranker.ServiceName) },
			func(l *logger.Logger) tracer.Logger { return l },
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		httpserver.FXModule,
		reranker.FXModule,
	).Run()
}
