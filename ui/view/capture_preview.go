package view

import (
	"image"

	"github.com/soocke/sticker-scan-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview abstracts the live frame preview and the processed scan
// region preview. It owns two LabelWidgets and provides methods to update or
// reset them.
type CapturePreview interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	Reset()
}

type capturePreview struct {
	captureLabel       *LabelWidget
	detectionLabel     *LabelWidget
	prevCapturePhoto   *Img // last Tk photo instance for the live preview
	prevDetectionPhoto *Img // last Tk photo instance for the scan region
}

const (
	// Max preview dimensions; scaling is proportional.
	maxPreviewW = 400
	maxPreviewH = 225
)

// NewCapturePreview creates the preview labels and grids them.
// Layout: live frame spans columns 0-3; the processed scan region sits at
// column 4 of the provided row.
func NewCapturePreview(row int) CapturePreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	pngBytes := images.EncodePNG(placeholder)
	capPhoto := NewPhoto(Data(pngBytes))
	detPhoto := NewPhoto(Data(pngBytes))
	capture := Label(Image(capPhoto), Borderwidth(1), Relief("sunken"))
	detection := Label(Image(detPhoto), Borderwidth(1), Relief("sunken"))
	Grid(capture, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(detection, Row(row), Column(4), Columnspan(1), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{captureLabel: capture, detectionLabel: detection, prevCapturePhoto: capPhoto, prevDetectionPhoto: detPhoto}
}

func (v *capturePreview) UpdateCapture(img image.Image) {
	if v.captureLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxPreviewW, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	// Dispose the previous photo so obsolete pixel buffers are not retained.
	if v.prevCapturePhoto != nil {
		v.prevCapturePhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevCapturePhoto = newPhoto
	v.captureLabel.Configure(Image(newPhoto))
}

func (v *capturePreview) UpdateDetection(img image.Image) {
	if v.detectionLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxPreviewW/2, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	if v.prevDetectionPhoto != nil {
		v.prevDetectionPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevDetectionPhoto = newPhoto
	v.detectionLabel.Configure(Image(newPhoto))
}

func (v *capturePreview) Reset() {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	pngBytes := images.EncodePNG(placeholder)
	if v.captureLabel != nil {
		if v.prevCapturePhoto != nil {
			v.prevCapturePhoto.Delete()
		}
		v.prevCapturePhoto = NewPhoto(Data(pngBytes))
		v.captureLabel.Configure(Image(v.prevCapturePhoto))
	}
	if v.detectionLabel != nil {
		if v.prevDetectionPhoto != nil {
			v.prevDetectionPhoto.Delete()
		}
		v.prevDetectionPhoto = NewPhoto(Data(pngBytes))
		v.detectionLabel.Configure(Image(v.prevDetectionPhoto))
	}
}
