package visual

import (
	"fmt"
	"os"
	"path"
	"strconv"
)

// ServiceName identifies the service in logs, metrics, and traces.
const ServiceName = "visual-embedding-service"

// EmbedDim is the model's hidden width and therefore the output vector
// length.
const EmbedDim = 2048

// imageInstruction accompanies the image through the chat-template pipeline
// in the full variant.
const imageInstruction = "Describe the visual content of this image for retrieval."

type Config struct {
	// ModelPath identifies the multimodal model on the runner (an id or a
	// local path the runner resolves).
	ModelPath string

	// Host and Port bind the API listener.
	Host string
	Port int

	// UseGPU requests accelerated placement first, with one CPU fallback.
	UseGPU bool

	// FullPipeline selects the full multimodal variant; off means the
	// text-description fallback.
	FullPipeline bool

	// RunnerEndpoint is the base URL of the model-runner sidecar.
	RunnerEndpoint string

	// RunnerTimeoutS bounds each runner call in seconds.
	RunnerTimeoutS int
}

// NewConfig reads the service configuration from environment variables.
func NewConfig() *Config {
	port := 8002
	if v := os.Getenv("VISUAL_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	timeout := 180
	if v := os.Getenv("VISUAL_RUNNER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &Config{
		ModelPath:      getenvDefault("VISUAL_MODEL_PATH", "Qwen3-VL-Embedding-2B"),
		Host:           getenvDefault("VISUAL_HOST", "0.0.0.0"),
		Port:           port,
		UseGPU:         getenvDefault("VISUAL_USE_GPU", "true") == "true",
		FullPipeline:   os.Getenv("VISUAL_FULL_PIPELINE") == "true",
		RunnerEndpoint: os.Getenv("VISUAL_RUNNER_ENDPOINT"),
		RunnerTimeoutS: timeout,
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ModelName is the short model identifier reported by /health.
func (c *Config) ModelName() string {
	return path.Base(c.ModelPath)
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.RunnerEndpoint == "" {
		return fmt.Errorf("visual: missing VISUAL_RUNNER_ENDPOINT")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("visual: missing VISUAL_MODEL_PATH")
	}
	return nil
}
