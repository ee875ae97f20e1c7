package reranker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/model"
)

// Client input errors; the handler maps them to 400.
var (
	ErrEmptyQuery        = errors.New("query cannot be empty")
	ErrNoCandidates      = errors.New("candidates cannot be empty")
	ErrTooManyCandidates = errors.New("max 100 candidates per request")
	ErrInvalidTopK       = errors.New("top_k must be between 1 and 100")
)

// Service validates requests, drives the one-shot loader, and ranks scored
// candidates.
type Service struct {
	cfg     *Config
	loader  *model.Loader[Provider]
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewService wires the provider behind a loader keyed on the configured
// model and GPU preference.
func NewService(cfg *Config, provider Provider, log *logger.Logger, m *metrics.Metrics) *Service {
	loader := model.NewLoader(cfg.Model, cfg.UseGPU, func(ctx context.Context, device model.Device) (Provider, error) {
		if err := provider.Acquire(ctx, device); err != nil {
			return nil, err
		}
		return provider, nil
	}, log)
	if m != nil {
		loader.WithObserver(m)
	}
	return &Service{
		cfg:     cfg,
		loader:  loader,
		metrics: m,
		log:     log,
	}
}

// Load makes the model resident. Idempotent.
func (s *Service) Load(ctx context.Context) error {
	_, err := s.loader.Load(ctx)
	return err
}

// Rerank scores every candidate against the query and returns the top_k by
// score descending, ties in input order.
//
// Scoring is sequential per candidate. Any single pair failing fails the
// whole request; partial rankings would silently misorder results.
func (s *Service) Rerank(ctx context.Context, req *RerankRequest) (*RerankResponse, error) {
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}
	if len(req.Candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(req.Candidates) > MaxCandidates {
		return nil, ErrTooManyCandidates
	}
	topK := DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
		if topK < 1 || topK > MaxCandidates {
			return nil, ErrInvalidTopK
		}
	}

	provider, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	prefixedQuery := instructionPrefix + req.Query

	scores := make([]float64, len(req.Candidates))
	for i, candidate := range req.Candidates {
		score, err := provider.Score(ctx, prefixedQuery, candidate.Text)
		if err != nil {
			return nil, fmt.Errorf("score candidate %d: %w", i, err)
		}
		scores[i] = score
	}
	if s.metrics != nil {
		s.metrics.RecordInferenceDuration(start, "score")
	}

	ranked := rankCandidates(scores, topK)
	results := make([]RankedResult, len(ranked))
	for rank, entry := range ranked {
		candidate := req.Candidates[entry.index]
		results[rank] = RankedResult{
			Text:          candidate.Text,
			Score:         entry.score,
			OriginalIndex: entry.index,
			ID:            candidate.ID,
			Metadata:      candidate.Metadata,
		}
	}

	return &RerankResponse{
		Ranked:     results,
		Query:      req.Query,
		Model:      s.cfg.Model,
		DurationMS: math.Round(float64(time.Since(start).Microseconds())/100) / 10,
	}, nil
}

// Health reports load status for the health endpoint.
func (s *Service) Health() HealthResponse {
	ready := s.loader.Ready()
	status := "model_not_loaded"
	if ready {
		status = "ready"
	}
	return HealthResponse{
		Ready:  ready,
		Model:  s.cfg.Model,
		Device: string(s.loader.Device()),
		Status: status,
	}
}
