package recognize

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"github.com/otiai10/gosseract/v2"
)

// digitWhitelist restricts recognition to sticker numbers.
const digitWhitelist = "0123456789"

// TesseractRecognizer reads sticker numbers from image regions via the
// gosseract client. A fresh client is created per call so a failed
// recognition cannot poison later ones.
type TesseractRecognizer struct {
	language      string
	logger        *slog.Logger
	clientFactory func() *gosseract.Client
}

// NewTesseractRecognizer constructs a recognizer for the given OCR language.
func NewTesseractRecognizer(language string, logger *slog.Logger) *TesseractRecognizer {
	return &TesseractRecognizer{language: language, logger: logger, clientFactory: gosseract.NewClient}
}

// Recognize performs OCR on the region and returns the first number read.
// The returned value is not range-checked; the capture session owns the
// album bounds.
func (r *TesseractRecognizer) Recognize(region image.Image) (int, error) {
	if region == nil {
		return 0, fmt.Errorf("nil region")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, region); err != nil {
		return 0, fmt.Errorf("encode region: %w", err)
	}

	c := r.clientFactory()
	defer c.Close()
	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return 0, fmt.Errorf("set image: %w", err)
	}
	if r.language != "" {
		if err := c.SetLanguage(r.language); err != nil {
			return 0, fmt.Errorf("set language: %w", err)
		}
	}
	if err := c.SetWhitelist(digitWhitelist); err != nil {
		return 0, fmt.Errorf("set whitelist: %w", err)
	}
	if err := c.SetPageSegMode(gosseract.PSM_AUTO_OSD); err != nil {
		return 0, fmt.Errorf("set page segmentation: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return 0, fmt.Errorf("ocr text: %w", err)
	}
	n, err := ParseNumber(text)
	if err != nil {
		return 0, err
	}
	if r.logger != nil {
		r.logger.Debug("ocr reading", "text", text, "number", n)
	}
	return n, nil
}
