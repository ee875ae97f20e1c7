package reranker

import (
	"context"
	"fmt"
	"time"

	"github.com/helixrag/modelserve/pkg/model"
)

// runnerProvider talks to the model-runner sidecar; endpoint shapes stay
// internal to this file.
type runnerProvider struct {
	client *model.RunnerClient
	model  string
}

// NewRunnerProvider constructs the runner-backed provider from config.
func NewRunnerProvider(cfg *Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("reranker: invalid config: %w", err)
	}
	client, err := model.NewRunnerClient(cfg.RunnerEndpoint, time.Duration(cfg.RunnerTimeoutS)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("reranker: failed to create runner client: %w", err)
	}
	return &runnerProvider{client: client, model: cfg.Model}, nil
}

// Acquire asks the runner to make the model resident on the given device.
func (p *runnerProvider) Acquire(ctx context.Context, device model.Device) error {
	body := map[string]any{
		"model":  p.model,
		"device": string(device),
	}
	if err := p.client.PostJSON(ctx, "/v1/models/load", body, nil); err != nil {
		return fmt.Errorf("acquire %s on %s: %w", p.model, device, err)
	}
	return nil
}

// Score runs one forward pass over the pair. Tokenization truncates at
// MaxSequenceLength on the runner side; the relevance score is the first
// value of the flattened logits.
func (p *runnerProvider) Score(ctx context.Context, query, candidate string) (float64, error) {
	body := map[string]any{
		"model":      p.model,
		"text_pair":  []string{query, candidate},
		"truncation": true,
		"max_length": MaxSequenceLength,
	}

	var parsed struct {
		Logits []float64 `json:"logits"`
	}
	if err := p.client.PostJSON(ctx, "/v1/score", body, &parsed); err != nil {
		return 0, err
	}
	if len(parsed.Logits) == 0 {
		return 0, fmt.Errorf("score returned empty logits")
	}
	return parsed.Logits[0], nil
}
