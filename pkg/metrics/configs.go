package metrics

import "os"

// DefaultMetricsAddress is used when METRICS_ADDRESS is unset.
const DefaultMetricsAddress = ":9090"

// Config controls the metrics registry and its HTTP listener.
type Config struct {
	// Address is the listen address of the /metrics server, e.g. ":9090".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process, and build
	// info collectors alongside the service's own instruments.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName is applied as a constant service="<name>" label on every
	// metric, so the three services can share one Prometheus.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// NewConfig reads the metrics configuration from environment variables,
// stamping the given service name.
func NewConfig(serviceName string) Config {
	addr := os.Getenv("METRICS_ADDRESS")
	if addr == "" {
		addr = DefaultMetricsAddress
	}
	return Config{
		Address:                 addr,
		EnableDefaultCollectors: os.Getenv("METRICS_DISABLE_DEFAULT_COLLECTORS") != "true",
		ServiceName:             serviceName,
	}
}
