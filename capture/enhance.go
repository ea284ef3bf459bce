package capture

import (
	"image"

	"github.com/disintegration/imaging"
)

// minOCRWidth is the smallest region width fed to the OCR engine; smaller
// regions are upscaled first.
const minOCRWidth = 200

// EnhanceForOCR prepares a region for digit recognition: grayscale,
// contrast boost, light sharpening, and upscaling of small regions.
func EnhanceForOCR(img image.Image) *image.NRGBA {
	if img == nil {
		return nil
	}
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 40)
	out = imaging.Sharpen(out, 1.0)
	if w := out.Bounds().Dx(); w > 0 && w < minOCRWidth {
		out = imaging.Resize(out, minOCRWidth, 0, imaging.Lanczos)
	}
	return out
}
