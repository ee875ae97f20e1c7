package visual

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	// Register the decoders for the formats the orchestrator sends.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/metrics"
	"github.com/helixrag/modelserve/pkg/model"
)

var (
	// ErrNotReady maps to 503: the startup load has not completed (or
	// failed), and the visual handlers never load lazily.
	ErrNotReady = errors.New("Model not loaded")

	// ErrInvalidImage maps to 400; the wrapped message carries the
	// decoding detail.
	ErrInvalidImage = errors.New("Invalid image")
)

// Service validates and decodes requests, gates them on the loader, and
// delegates to the configured encoder variant.
type Service struct {
	cfg      *Config
	encoder  encoder
	provider Provider
	loader   *model.Loader[Provider]
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewService wires the provider behind a loader and selects the encoder
// variant from config.
func NewService(cfg *Config, provider Provider, log *logger.Logger, m *metrics.Metrics) *Service {
	loader := model.NewLoader(cfg.ModelName(), cfg.UseGPU, func(ctx context.Context, device model.Device) (Provider, error) {
		if err := provider.Acquire(ctx, device); err != nil {
			return nil, err
		}
		return provider, nil
	}, log)
	if m != nil {
		loader.WithObserver(m)
	}
	return &Service{
		cfg:      cfg,
		encoder:  newEncoder(cfg, provider),
		provider: provider,
		loader:   loader,
		metrics:  m,
		log:      log,
	}
}

// Load makes the model resident. Idempotent; called by the startup hook.
func (s *Service) Load(ctx context.Context) error {
	_, err := s.loader.Load(ctx)
	return err
}

// EmbedImage embeds an image into a unit vector.
func (s *Service) EmbedImage(ctx context.Context, req *EmbedImageRequest) (*EmbedResponse, error) {
	if !s.loader.Ready() {
		return nil, ErrNotReady
	}
	img, err := decodeImage(req.Image, req.Format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	vec, err := s.encoder.embedImage(ctx, img)
	if s.metrics != nil {
		s.metrics.RecordInferenceDuration(start, "embed_image")
	}
	if err != nil {
		return nil, err
	}
	return newEmbedResponse(vec, start), nil
}

// EmbedCrossModal embeds an image together with text into a unit vector.
func (s *Service) EmbedCrossModal(ctx context.Context, req *EmbedCrossModalRequest) (*EmbedResponse, error) {
	if !s.loader.Ready() {
		return nil, ErrNotReady
	}
	img, err := decodeImage(req.Image, req.Format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	vec, err := s.encoder.embedCrossModal(ctx, img, req.Text)
	if s.metrics != nil {
		s.metrics.RecordInferenceDuration(start, "embed_cross_modal")
	}
	if err != nil {
		return nil, err
	}
	return newEmbedResponse(vec, start), nil
}

// EmbedText embeds text into a unit vector.
func (s *Service) EmbedText(ctx context.Context, req *EmbedTextRequest) (*EmbedResponse, error) {
	if !s.loader.Ready() {
		return nil, ErrNotReady
	}

	start := time.Now()
	vec, err := s.encoder.embedText(ctx, req.Text)
	if s.metrics != nil {
		s.metrics.RecordInferenceDuration(start, "embed_text")
	}
	if err != nil {
		return nil, err
	}
	return newEmbedResponse(vec, start), nil
}

// Health reports load status, placement, and accelerator memory.
func (s *Service) Health(ctx context.Context) HealthResponse {
	if !s.loader.Ready() {
		return HealthResponse{
			Status: "unhealthy",
			Model:  s.cfg.ModelName(),
			GPU:    false,
			Error:  "Not loaded",
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Model:     s.cfg.ModelName(),
		GPU:       s.loader.Device() == model.DeviceCUDA,
		Dimension: EmbedDim,
	}
	if resp.GPU {
		vram := s.provider.VRAMGB(ctx)
		resp.VRAMGB = &vram
	}
	return resp
}

func newEmbedResponse(vec []float64, start time.Time) *EmbedResponse {
	return &EmbedResponse{
		Vector:     vec,
		Dimension:  len(vec),
		DurationMS: math.Round(float64(time.Since(start).Microseconds())/100) / 10,
	}
}

// decodeImage turns the base64 payload into pixels while keeping the
// original payload for the full variant.
func decodeImage(b64, format string) (*decodedImage, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return &decodedImage{img: img, b64: b64, format: format}, nil
}
