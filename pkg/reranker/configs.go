package reranker

import (
	"fmt"
	"os"
	"strconv"
)

// ServiceName identifies the service in logs, metrics, and traces.
const ServiceName = "reranker-service"

const (
	// MaxCandidates is the per-request candidate cap.
	MaxCandidates = 100

	// DefaultTopK applies when the request omits top_k.
	DefaultTopK = 5

	// MaxSequenceLength is the token budget per scored pair; the runner
	// truncates beyond it.
	MaxSequenceLength = 512
)

// instructionPrefix is prepended to the query of every scored pair, matching
// the instruction format the reranker model was trained with.
const instructionPrefix = "Instruct: Given a web search query, retrieve relevant passages that answer the query\nQuery: "

type Config struct {
	// Model is the reranker model identifier passed to the runner.
	Model string

	// Host and Port bind the API listener.
	Host string
	Port int

	// UseGPU requests accelerated placement first, with one CPU fallback.
	UseGPU bool

	// RunnerEndpoint is the base URL of the model-runner sidecar.
	RunnerEndpoint string

	// RunnerTimeoutS bounds each runner call in seconds.
	RunnerTimeoutS int
}

// NewConfig reads the service configuration from environment variables.
func NewConfig() *Config {
	port := 8101
	if v := os.Getenv("RERANKER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	timeout := 120
	if v := os.Getenv("RERANKER_RUNNER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &Config{
		Model:          getenvDefault("RERANKER_MODEL", "Qwen/Qwen3-Reranker-0.6B"),
		Host:           getenvDefault("RERANKER_HOST", "0.0.0.0"),
		Port:           port,
		UseGPU:         getenvDefault("RERANKER_USE_GPU", "true") == "true",
		RunnerEndpoint: os.Getenv("RERANKER_RUNNER_ENDPOINT"),
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
		return fmt.Errorf("reranker: missing RERANKER_RUNNER_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("reranker: missing RERANKER_MODEL")
	}
	return nil
}
