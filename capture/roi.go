package capture

import (
	"errors"
	"image"
	"image/draw"
)

// CenterROI extracts the centered scan rectangle whose sides are fraction of
// the frame dimensions, clamped to at least 1x1. It returns the ROI image
// (always *image.RGBA) and the rectangle relative to the frame.
func CenterROI(frame *image.RGBA, fraction float64) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	if fraction <= 0 || fraction > 1 {
		fraction = 0.33
	}
	b := frame.Bounds()
	w := int(float64(b.Dx()) * fraction)
	h := int(float64(b.Dy()) * fraction)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2
	roi := image.Rect(x0, y0, x0+w, y0+h)

	sub := frame.SubImage(roi)
	if rgba, ok := sub.(*image.RGBA); ok {
		return rgba, roi, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, roi.Dx(), roi.Dy()))
	draw.Draw(out, out.Bounds(), sub, roi.Min, draw.Src)
	return out, roi, nil
}
