package model

import (
	"image"
)

// ROIModel holds the scan rectangle of the most recent detect, in frame
// coordinates. Zero value means no active ROI and is usable. No
// synchronization needed: updates occur on the UI thread tick.
type ROIModel struct {
	rect image.Rectangle
}

func NewROIModel() *ROIModel { return &ROIModel{} }

// SetRect sets the rectangle. Use an empty rect to clear.
func (m *ROIModel) SetRect(r image.Rectangle) {
	if m == nil {
		return
	}
	if r.Empty() || r.Dx() <= 0 || r.Dy() <= 0 {
		m.rect = image.Rectangle{}
		return
	}
	m.rect = r
}

// Rect returns the current rectangle (may be empty).
func (m *ROIModel) Rect() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.rect
}
