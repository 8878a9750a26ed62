package images

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestPreviewScale_WidthBound(t *testing.T) {
	// The documented preview cap: a 1000px-wide image in a 960px box.
	s := PreviewScale(1000, 500, 960, 540)
	if math.Abs(s-0.96) > 1e-9 {
		t.Fatalf("scale = %v, want 0.96", s)
	}
	// Preview radius for radius 50 comes out at 48.
	if r := 50 * s; math.Abs(r-48) > 1e-9 {
		t.Fatalf("preview radius = %v, want 48", r)
	}
}

func TestPreviewScale_NeverUpscales(t *testing.T) {
	if s := PreviewScale(100, 100, 960, 540); s != 1 {
		t.Fatalf("small image scaled: %v", s)
	}
}

func TestPreviewScale_HeightBound(t *testing.T) {
	// Tall images are limited by the box height.
	s := PreviewScale(500, 2000, 960, 540)
	if math.Abs(s-0.27) > 1e-9 {
		t.Fatalf("scale = %v, want 0.27", s)
	}
}

func TestFitPreview_Dimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1000, 500))
	got := FitPreview(src, 960, 540)
	if got.Bounds().Dx() != 960 || got.Bounds().Dy() != 480 {
		t.Fatalf("fit = %dx%d, want 960x480", got.Bounds().Dx(), got.Bounds().Dy())
	}
	small := image.NewNRGBA(image.Rect(0, 0, 300, 200))
	got = FitPreview(small, 960, 540)
	if got.Bounds().Dx() != 300 || got.Bounds().Dy() != 200 {
		t.Fatalf("small image resized to %dx%d", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestOverCheckerboard_ShowsThroughTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	// Opaque red center pixel, everything else transparent.
	img.SetNRGBA(16, 16, color.NRGBA{255, 0, 0, 255})
	out := OverCheckerboard(img)
	if _, _, _, a := out.At(0, 0).RGBA(); a == 0 {
		t.Fatalf("backdrop missing at transparent corner")
	}
	r, g, b, _ := out.At(16, 16).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Fatalf("opaque pixel lost: %v %v %v", r>>8, g>>8, b>>8)
	}
	// Transparent area shows the checker, not black.
	r0, _, _, _ := out.At(0, 0).RGBA()
	if r0>>8 != 200 && r0>>8 != 156 {
		t.Fatalf("corner = %d, want checker gray", r0>>8)
	}
}
