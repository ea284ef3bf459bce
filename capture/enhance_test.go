package capture

import (
	"image"
	"image/color"
	"testing"
)

func TestEnhanceForOCR_GrayscaleOutput(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	out := EnhanceForOCR(src)
	if out == nil {
		t.Fatalf("nil output")
	}
	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != 200 {
		t.Fatalf("large region resized unexpectedly: %v", out.Bounds())
	}
	r, g, b, _ := out.At(10, 10).RGBA()
	if r != g || g != b {
		t.Fatalf("expected grayscale pixel, got r=%d g=%d b=%d", r, g, b)
	}
}

func TestEnhanceForOCR_UpscalesSmallRegions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 30))
	out := EnhanceForOCR(src)
	if out == nil || out.Bounds().Dx() < 200 {
		t.Fatalf("small region not upscaled: %v", out.Bounds())
	}
}

func TestEnhanceForOCR_NilInput(t *testing.T) {
	if out := EnhanceForOCR(nil); out != nil {
		t.Fatalf("expected nil for nil input")
	}
}
