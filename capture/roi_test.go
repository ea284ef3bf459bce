package capture

import (
	"image"
	"testing"
)

func TestCenterROI_CentersAtFraction(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 300, 150))
	roi, rect, err := CenterROI(frame, 0.5)
	if err != nil || roi == nil {
		t.Fatalf("expected ROI, got err=%v", err)
	}
	if rect.Dx() != 150 || rect.Dy() != 75 {
		t.Fatalf("expected 150x75, got %dx%d", rect.Dx(), rect.Dy())
	}
	if rect.Min.X != 75 || rect.Min.Y != 37 {
		t.Fatalf("unexpected rect origin %v", rect.Min)
	}
}

func TestCenterROI_InvalidFractionFallsBack(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	_, rect, err := CenterROI(frame, 0)
	if err != nil {
		t.Fatalf("roi error: %v", err)
	}
	if rect.Dx() != 33 || rect.Dy() != 33 {
		t.Fatalf("expected default fraction rect, got %v", rect)
	}
}

func TestCenterROI_MinimumSize(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	roi, rect, err := CenterROI(frame, 0.1)
	if err != nil || roi == nil {
		t.Fatalf("roi error: %v", err)
	}
	if rect.Dx() != 1 || rect.Dy() != 1 {
		t.Fatalf("expected 1x1 got %dx%d", rect.Dx(), rect.Dy())
	}
}

func TestCenterROI_NilFrame(t *testing.T) {
	if _, _, err := CenterROI(nil, 0.5); err == nil {
		t.Fatalf("expected error for nil frame")
	}
}
