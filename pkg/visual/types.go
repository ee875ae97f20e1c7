package visual

import (
	"context"
	"image"

	"github.com/helixrag/modelserve/pkg/model"
)

// EmbedImageRequest is the /embed-image request body. Image is base64.
type EmbedImageRequest struct {
	Image  string `json:"image"`
	Format string `json:"format"`
}

// EmbedCrossModalRequest is the /embed-cross-modal request body.
type EmbedCrossModalRequest struct {
	Image  string `json:"image"`
	Text   string `json:"text"`
	Format string `json:"format"`
}

// EmbedTextRequest is the /embed-text request body.
type EmbedTextRequest struct {
	Text string `json:"text"`
}

// EmbedResponse is the shared response body of all three embed endpoints.
type EmbedResponse struct {
	Vector     []float64 `json:"vector"`
	Dimension  int       `json:"dimension"`
	DurationMS float64   `json:"duration_ms"`
}

// HealthResponse is the /health response body. Dimension appears once the
// model is resident, VRAMGB only on accelerated placement, Error only while
// the model is not resident.
type HealthResponse struct {
	Status    string   `json:"status"`
	Model     string   `json:"model"`
	GPU       bool     `json:"gpu"`
	Dimension int      `json:"dimension,omitempty"`
	VRAMGB    *float64 `json:"vram_gb,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// decodedImage carries both the pixel data (for the fallback variant's
// local analysis) and the original base64 payload (forwarded by the full
// variant).
type decodedImage struct {
	img    image.Image
	b64    string
	format string
}

// Provider is the contract to the loaded multimodal model on the runner.
// Both Encode methods return the final hidden-state sequence, one row per
// token; pooling happens on this side.
type Provider interface {
	// Acquire loads the model on the runner with the given placement.
	Acquire(ctx context.Context, device model.Device) error

	// EncodeText runs the text pathway.
	EncodeText(ctx context.Context, text string) ([][]float64, error)

	// EncodeImage runs the chat-template pipeline over the image plus an
	// accompanying text.
	EncodeImage(ctx context.Context, imageB64, format, text string) ([][]float64, error)

	// VRAMGB reports accelerator memory held by the model, best effort.
	VRAMGB(ctx context.Context) float64
}

// encoder is the seam between the two variants.
type encoder interface {
	embedImage(ctx context.Context, img *decodedImage) ([]float64, error)
	embedCrossModal(ctx context.Context, img *decodedImage, text string) ([]float64, error)
	embedText(ctx context.Context, text string) ([]float64, error)
}
