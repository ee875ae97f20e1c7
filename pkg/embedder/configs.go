package embedder

import (
	"fmt"
	"os"
	"strconv"
)

// ServiceName identifies the service in logs, metrics, and traces.
const ServiceName = "embedding-service"

// MaxTexts is the per-request input cap.
const MaxTexts = 256

type Config struct {
	// Model is the embedding model identifier passed to the runner.
	Model string

	// Host and Port bind the API listener.
	Host string
	Port int

	// UseGPU requests accelerated placement first; on failure the load
	// falls back to CPU once.
	UseGPU bool

	// RunnerEndpoint is the base URL of the model-runner sidecar.
	RunnerEndpoint string

	// RunnerTimeoutS bounds each runner call in seconds.
	RunnerTimeoutS int
}

// NewConfig reads the service configuration from environment variables.
func NewConfig() *Config {
	port := 8100
	if v := os.Getenv("EMBEDDING_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	timeout := 120
	if v := os.Getenv("EMBEDDING_RUNNER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &Config{
		Model:          getenvDefault("EMBEDDING_MODEL", "BAAI/bge-m3"),
		Host:           getenvDefault("EMBEDDING_HOST", "0.0.0.0"),
		Port:           port,
		UseGPU:         getenvDefault("EMBEDDING_USE_GPU", "true") == "true",
		RunnerEndpoint: os.Getenv("EMBEDDING_RUNNER_ENDPOINT"),
		RunnerTimeoutS: timeout,
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.RunnerEndpoint == "" {
		return fmt.Errorf("embedder: missing EMBEDDING_RUNNER_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedder: missing EMBEDDING_MODEL")
	}
	return nil
}
