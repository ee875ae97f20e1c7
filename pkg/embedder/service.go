package embedder

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
	ErrEmptyTexts   = errors.New("texts cannot be empty")
	ErrTooManyTexts = errors.New("max 256 texts per request")
)

// Service validates requests, drives the one-shot loader, and shapes encode
// output into responses.
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

// Load makes the model resident. Idempotent; used by the startup hook and
// implicitly by every request.
func (s *Service) Load(ctx context.Context) error {
	_, err := s.loader.Load(ctx)
	return err
}

// Embed handles one embedding request end to end.
//
// Validation runs before any runner work, so an empty or over-limit batch
// never triggers an inference attempt. The whole slice goes to the runner in
// one call; results come back in input order.
func (s *Service) Embed(ctx context.Context, req *EmbedRequest) (*EmbedResponse, error) {
	if len(req.Texts) == 0 {
		return nil, ErrEmptyTexts
	}
	if len(req.Texts) > MaxTexts {
		return nil, ErrTooManyTexts
	}

	provider, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	output, err := provider.Encode(ctx, req.Texts, req.ReturnSparse)
	if s.metrics != nil {
		s.metrics.RecordInferenceDuration(start, "encode")
	}
	if err != nil {
		return nil, err
	}

	results := make([]EmbedResult, len(req.Texts))
	for i := range req.Texts {
		results[i].Dense = output.Dense[i]

		// Sparse stays null unless requested and reported by the runner.
		if req.ReturnSparse && i < len(output.LexicalWeights) {
			sparse, err := decodeLexicalWeights(output.LexicalWeights[i])
			if err != nil {
				return nil, fmt.Errorf("lexical weights for text %d: %w", i, err)
			}
			results[i].Sparse = sparse
		}
	}

	return &EmbedResponse{
		Results:    results,
		Model:      s.cfg.Model,
		DurationMS: math.Round(float64(time.Since(start).Microseconds())/10) / 100,
	}, nil
}

// Health reports load status for the health endpoint.
func (s *Service) Health() HealthResponse {
	ready := s.loader.Ready()
	status := "loading"
	if ready {
		status = "ok"
	}
	return HealthResponse{
		Status: status,
		Model:  s.cfg.Model,
		Device: string(s.loader.Device()),
		Ready:  ready,
	}
}
