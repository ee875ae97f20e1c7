// Package visual implements the visual embedding service: image and/or text
// in, one L2-normalized 2048-dimension vector out.
//
// Two encoder variants exist behind the same three endpoints (embed-image,
// embed-cross-modal, embed-text), selected by configuration:
//
//   - The fallback variant never sends pixels to the model. It decodes the
//     image locally, derives coarse structural features (dimensions, aspect
//     class, a sparse grid of sampled colors), synthesizes a textual
//     description, and embeds that through the text pathway. An explicit
//     workaround, not a true visual encoder.
//
//   - The full variant forwards the image through the runner's multimodal
//     chat-template pipeline alongside an instructional text, producing a
//     genuine joint visual-text embedding.
//
// Either way the runner returns the final hidden-state sequence; this
// package mean-pools it over the token axis and unit-normalizes the result.
//
// Unlike the text services, the visual handlers do not lazy-load: requests
// arriving before the startup load completes get 503.
package visual
