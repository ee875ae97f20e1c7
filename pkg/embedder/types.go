package embedder

import (
	"context"
	"encoding/json"

	"github.com/helixrag/modelserve/pkg/model"
)

// EmbedRequest is the /embed request body.
type EmbedRequest struct {
	Texts        []string `json:"texts"`
	ReturnSparse bool     `json:"return_sparse"`
}

// EmbedResult is the per-text embedding. Sparse is null unless sparse output
// was requested and the runner produced lexical weights.
type EmbedResult struct {
	Dense  []float64    `json:"dense"`
	Sparse SparseVector `json:"sparse"`
}

// EmbedResponse is the /embed response body. Results are in input order.
type EmbedResponse struct {
	Results    []EmbedResult `json:"results"`
	Model      string        `json:"model"`
	DurationMS float64       `json:"duration_ms"`
}

// HealthResponse is the /health response body.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Device string `json:"device"`
	Ready  bool   `json:"ready"`
}

// EncodeOutput is what one batch encode call yields. LexicalWeights is
// per-text and raw: the runner reports weights either as a token-id→weight
// object or as a dense per-token array, and decoding is deferred to the
// response-shaping step.
type EncodeOutput struct {
	Dense          [][]float64
	LexicalWeights []json.RawMessage
}

// Provider is the contract to the loaded embedding model.
type Provider interface {
	// Acquire loads the model on the runner with the given placement.
	Acquire(ctx context.Context, device model.Device) error

	// Encode runs one batch encode over all texts.
	Encode(ctx context.Context, texts []string, returnSparse bool) (*EncodeOutput, error)
}
