// Package recognize converts image regions into sticker numbers using a
// Tesseract-backed OCR engine.
package recognize

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoNumber signals that the OCR output contained no usable number.
var ErrNoNumber = errors.New("no number found")

var digitsRe = regexp.MustCompile(`\d+`)

// ParseNumber extracts the first integer from raw OCR text. Surrounding
// noise characters are ignored.
func ParseNumber(text string) (int, error) {
	match := digitsRe.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, ErrNoNumber
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, ErrNoNumber
	}
	return n, nil
}
