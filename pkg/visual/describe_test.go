package visual

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAspectClass(t *testing.T) {
	cases := []struct {
		w, h int
		want string
	}{
		{1920, 1080, "landscape"},
		{1080, 1920, "portrait"},
		{512, 512, "square"},
	}
	for _, tc := range cases {
		if got := aspectClass(tc.w, tc.h); got != tc.want {
			t.Errorf("aspectClass(%d, %d) = %q, want %q", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestDescribeImageFormat(t *testing.T) {
	img := solidImage(8, 4, color.RGBA{R: 255, A: 255})
	desc := describeImage(img)

	if !strings.HasPrefix(desc, "Screenshot image 8x4 landscape orientation. Colors: ") {
		t.Fatalf("unexpected description prefix: %q", desc)
	}
	if !strings.Contains(desc, "rgb(255,0,0)") {
		t.Errorf("description missing sampled color: %q", desc)
	}
}

func TestDescribeImageCapsColorSamples(t *testing.T) {
	img := solidImage(100, 100, color.Gray{Y: 128})
	desc := describeImage(img)

	colors := strings.TrimPrefix(desc, "Screenshot image 100x100 square orientation. Colors: ")
	if n := len(strings.Fields(colors)); n > maxColorSamples {
		t.Errorf("got %d color samples, want at most %d", n, maxColorSamples)
	}
}

func TestDescribeImageOnePixel(t *testing.T) {
	img := solidImage(1, 1, color.White)
	desc := describeImage(img)
	if !strings.Contains(desc, "1x1 square") {
		t.Errorf("unexpected description for 1x1 image: %q", desc)
	}
}

func TestCrossModalDescription(t *testing.T) {
	img := solidImage(640, 480, color.Black)
	got := crossModalDescription("login page", img)
	if got != "login page | Screenshot 640x480" {
		t.Errorf("crossModalDescription = %q", got)
	}
}
