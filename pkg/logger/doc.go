// Package logger provides structured, zap-backed logging for the model
// serving services.
//
// The package exposes a thin wrapper around zap with a fixed call shape:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "embedding-service"})
//	log.Info("model loaded", nil, map[string]interface{}{"device": "cuda"})
//
// Every entry is JSON-encoded with an ISO8601 timestamp and carries the
// process id and service name as initial fields, so log lines from the three
// services can be told apart in a shared collector.
//
// When tracing is enabled, the *WithContext variants extract the active
// OpenTelemetry trace and span ids from the context and attach them as
// trace_id / span_id fields.
//
// An Fx module is provided that registers a shutdown hook flushing buffered
// entries:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { ... }),
//	)
package logger
