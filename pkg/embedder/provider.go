package embedder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/helixrag/modelserve/pkg/model"
)

// runnerProvider talks to the model-runner sidecar. It is unexported on
// purpose: application code depends on the Provider interface, all endpoint
// shapes stay internal.
type runnerProvider struct {
	client *model.RunnerClient
	model  string
}

// NewRunnerProvider constructs the runner-backed provider from config.
func NewRunnerProvider(cfg *Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedder: invalid config: %w", err)
	}
	client, err := model.NewRunnerClient(cfg.RunnerEndpoint, time.Duration(cfg.RunnerTimeoutS)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("embedder: failed to create runner client: %w", err)
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

// Encode runs one batch encode over all texts. The request mirrors the
// encoder's native options: dense output always, sparse lexical weights on
// demand, multi-vector output never.
func (p *runnerProvider) Encode(ctx context.Context, texts []string, returnSparse bool) (*EncodeOutput, error) {
	body := map[string]any{
		"model":               p.model,
		"texts":               texts,
		"return_dense":        true,
		"return_sparse":       returnSparse,
		"return_colbert_vecs": false,
	}

	var parsed struct {
		DenseVecs      [][]float64       `json:"dense_vecs"`
		LexicalWeights []json.RawMessage `json:"lexical_weights"`
	}
	if err := p.client.PostJSON(ctx, "/v1/encode", body, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.DenseVecs) != len(texts) {
		return nil, fmt.Errorf("encode returned %d vectors for %d texts", len(parsed.DenseVecs), len(texts))
	}

	return &EncodeOutput{
		Dense:          parsed.DenseVecs,
		LexicalWeights: parsed.LexicalWeights,
	}, nil
}
