package visual

import (
	"fmt"
	"image"
	"strings"
)

// maxColorSamples caps how many grid samples end up in the description.
const maxColorSamples = 16

// describeImage synthesizes the textual stand-in the fallback variant
// embeds instead of pixels: dimensions, aspect class, and a sparse grid of
// sampled colors as a coarse visual signature.
func describeImage(img image.Image) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	samples := sampleGrid(img)
	if len(samples) > maxColorSamples {
		samples = samples[:maxColorSamples]
	}

	return fmt.Sprintf("Screenshot image %dx%d %s orientation. Colors: %s",
		w, h, aspectClass(w, h), strings.Join(samples, " "))
}

// crossModalDescription combines caller text with the image's dimensions
// for the fallback cross-modal pathway.
func crossModalDescription(text string, img image.Image) string {
	bounds := img.Bounds()
	return fmt.Sprintf("%s | Screenshot %dx%d", text, bounds.Dx(), bounds.Dy())
}

// aspectClass buckets the image shape.
func aspectClass(w, h int) string {
	switch {
	case w > h:
		return "landscape"
	case h > w:
		return "portrait"
	default:
		return "square"
	}
}

// sampleGrid walks the image on a 4x4-ish grid and renders each sampled
// pixel as rgb(r,g,b) with 8-bit channels.
func sampleGrid(img image.Image) []string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	stepY := h / 4
	if stepY < 1 {
		stepY = 1
	}
	stepX := w / 4
	if stepX < 1 {
		stepX = 1
	}

	var samples []string
	for y := 0; y < h; y += stepY {
		for x := 0; x < w; x += stepX {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			samples = append(samples, fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8))
		}
	}
	return samples
}
