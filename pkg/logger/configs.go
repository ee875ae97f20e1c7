package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is one of debug, info, warning, error. Unknown values fall back
	// to info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// EnableTracing makes the *WithContext methods attach trace_id and
	// span_id fields extracted from the OpenTelemetry span in the context.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`
}

// NewConfig reads the logger configuration from environment variables,
// stamping the given service name.
func NewConfig(serviceName string) Config {
	level := os.Getenv("ZAP_LOGGER_LEVEL")
	if level == "" {
		level = Info
	}
	return Config{
		Level:         level,
		ServiceName:   serviceName,
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") == "true",
	}
}
