package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the collection tracker and the scanner.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// AlbumSize is the number of stickers in the album; valid sticker
	// numbers are 1..AlbumSize.
	AlbumSize int `json:"album_size"`

	// CollectionFile is the path of the CSV ledger holding owned quantities.
	CollectionFile string `json:"collection_file"`

	// OCR parameters
	OCRLanguage string `json:"ocr_language"`
	// ROIFraction is the side of the centered scan rectangle as a fraction
	// of each frame dimension.
	ROIFraction float64 `json:"roi_fraction"`

	// Capture rectangle persistence (screen region showing the camera preview)
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		AlbumSize:      720,
		CollectionFile: "collection.csv",
		OCRLanguage:    "eng",
		ROIFraction:    0.33,
		SelectionX:     0,
		SelectionY:     0,
		SelectionW:     0,
		SelectionH:     0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.AlbumSize <= 0 {
		c.AlbumSize = 720
	}
	if c.CollectionFile == "" {
		c.CollectionFile = "collection.csv"
	}
	if c.OCRLanguage == "" {
		c.OCRLanguage = "eng"
	}
	if c.ROIFraction <= 0 || c.ROIFraction > 1 {
		c.ROIFraction = 0.33
	}
	if c.SelectionW < 0 {
		c.SelectionW = 0
	}
	if c.SelectionH < 0 {
		c.SelectionH = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
