package reranker

import (
	"context"

	"github.com/helixrag/modelserve/pkg/model"
)

// Candidate is one rerank input. Metadata is an opaque pass-through bag:
// whatever the orchestrator attaches comes back untouched on the ranked
// result.
type Candidate struct {
	Text     string         `json:"text"`
	ID       string         `json:"id,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RerankRequest is the /rerank request body. TopK is a pointer so an absent
// field can default to DefaultTopK while 0 stays a client error.
type RerankRequest struct {
	Query      string      `json:"query"`
	Candidates []Candidate `json:"candidates"`
	TopK       *int        `json:"top_k"`
}

// RankedResult is one retained candidate. OriginalIndex is its position in
// the request, so callers can recover pre-rerank order.
type RankedResult struct {
	Text          string         `json:"text"`
	Score         float64        `json:"score"`
	OriginalIndex int            `json:"original_index"`
	ID            string         `json:"id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// RerankResponse is the /rerank response body. Ranked is sorted by score
// descending, ties in input order.
type RerankResponse struct {
	Ranked     []RankedResult `json:"ranked"`
	Query      string         `json:"query"`
	Model      string         `json:"model"`
	DurationMS float64        `json:"duration_ms"`
}

// HealthResponse is the /health response body.
type HealthResponse struct {
	Ready  bool   `json:"ready"`
	Model  string `json:"model"`
	Device string `json:"device"`
	Status string `json:"status"`
}

// Provider is the contract to the loaded cross-encoder.
type Provider interface {
	// Acquire loads the model on the runner with the given placement.
	Acquire(ctx context.Context, device model.Device) error

	// Score runs one forward pass over a (query, candidate) pair and
	// returns its scalar relevance score.
	Score(ctx context.Context, query, candidate string) (float64, error)
}
