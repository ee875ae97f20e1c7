package visual

import "context"

// fallbackEncoder never sends pixels to the model: images are reduced to a
// textual description locally and embedded through the text pathway.
type fallbackEncoder struct {
	provider Provider
}

func (e *fallbackEncoder) embedText(ctx context.Context, text string) ([]float64, error) {
	hidden, err := e.provider.EncodeText(ctx, text)
	if err != nil {
		return nil, err
	}
	return poolAndNormalize(hidden)
}

func (e *fallbackEncoder) embedImage(ctx context.Context, img *decodedImage) ([]float64, error) {
	return e.embedText(ctx, describeImage(img.img))
}

func (e *fallbackEncoder) embedCrossModal(ctx context.Context, img *decodedImage, text string) ([]float64, error) {
	return e.embedText(ctx, crossModalDescription(text, img.img))
}

// fullEncoder forwards the image through the runner's multimodal
// chat-template pipeline.
type fullEncoder struct {
	provider Provider
}

func (e *fullEncoder) embedText(ctx context.Context, text string) ([]float64, error) {
	hidden, err := e.provider.EncodeText(ctx, text)
	if err != nil {
		return nil, err
	}
	return poolAndNormalize(hidden)
}

func (e *fullEncoder) embedImage(ctx context.Context, img *decodedImage) ([]float64, error) {
	hidden, err := e.provider.EncodeImage(ctx, img.b64, img.format, imageInstruction)
	if err != nil {
		return nil, err
	}
	return poolAndNormalize(hidden)
}

func (e *fullEncoder) embedCrossModal(ctx context.Context, img *decodedImage, text string) ([]float64, error) {
	hidden, err := e.provider.EncodeImage(ctx, img.b64, img.format, text)
	if err != nil {
		return nil, err
	}
	return poolAndNormalize(hidden)
}

// newEncoder picks the variant from config.
func newEncoder(cfg *Config, provider Provider) encoder {
	if cfg.FullPipeline {
		return &fullEncoder{provider: provider}
	}
	return &fallbackEncoder{provider: provider}
}
