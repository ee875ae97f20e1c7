package visual

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
		return nil, fmt.Errorf("visual: invalid config: %w", err)
	}
	client, err := model.NewRunnerClient(cfg.RunnerEndpoint, time.Duration(cfg.RunnerTimeoutS)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("visual: failed to create runner client: %w", err)
	}
	return &runnerProvider{client: client, model: cfg.ModelPath}, nil
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

// EncodeText returns the final hidden-state sequence of the text pathway.
// The runner truncates at 512 tokens.
func (p *runnerProvider) EncodeText(ctx context.Context, text string) ([][]float64, error) {
	body := map[string]any{
		"model":      p.model,
		"text":       text,
		"truncation": true,
		"max_length": 512,
	}
	var parsed struct {
		HiddenStates [][]float64 `json:"hidden_states"`
	}
	if err := p.client.PostJSON(ctx, "/v1/encode-text", body, &parsed); err != nil {
		return nil, err
	}
	return parsed.HiddenStates, nil
}

// EncodeImage runs the chat-template pipeline over image plus text and
// returns the final hidden-state sequence.
func (p *runnerProvider) EncodeImage(ctx context.Context, imageB64, format, text string) ([][]float64, error) {
	body := map[string]any{
		"model":         p.model,
		"image":         imageB64,
		"format":        format,
		"text":          text,
		"chat_template": true,
	}
	var parsed struct {
		HiddenStates [][]float64 `json:"hidden_states"`
	}
	if err := p.client.PostJSON(ctx, "/v1/encode-image", body, &parsed); err != nil {
		return nil, err
	}
	return parsed.HiddenStates, nil
}

// VRAMGB reports the runner's allocated accelerator memory. Best effort:
// any error reads as zero.
func (p *runnerProvider) VRAMGB(ctx context.Context) float64 {
	var parsed struct {
		VRAMGB float64 `json:"vram_gb"`
	}
	if err := p.client.GetJSON(ctx, "/v1/status", &parsed); err != nil {
		return 0
	}
	return parsed.VRAMGB
}
