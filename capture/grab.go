package capture

import (
	"errors"
	"image"

	"github.com/vova616/screenshot"
)

// Grab returns a capture of the whole screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabSelection captures the given screen rectangle, typically the region
// showing the camera preview.
func GrabSelection(sel image.Rectangle) (*image.RGBA, error) {
	if sel.Empty() {
		return nil, errors.New("capture: empty selection")
	}
	img, err := screenshot.CaptureRect(sel)
	if err != nil {
		return nil, err
	}
	return img, nil
}
