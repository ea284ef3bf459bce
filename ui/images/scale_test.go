package images

import (
	"image"
	"testing"
)

func TestScaleToFit_NoScalingWhenWithinBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := ScaleToFit(src, 200, 200)
	if out != src {
		t.Fatalf("expected original image back")
	}
}

func TestScaleToFit_PreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	out := ScaleToFit(src, 400, 400)
	b := out.Bounds()
	if b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("expected 400x200, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodePNG(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatalf("expected nil for nil image")
	}
	data := EncodePNG(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if len(data) == 0 {
		t.Fatalf("expected PNG bytes")
	}
}
