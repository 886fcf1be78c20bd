package stitch

import (
	"fmt"
	"image/color"
	"io/ioutil"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config includes settings for merging tile sets
type Config struct {
	// colour used to pad tiles, as hex "#rrggbb" or "#rrggbbaa"
	Fill string `yaml:"fill"`

	// quality used when writing .jpg / .jpeg output
	JPEGQuality int `yaml:"jpeg_quality"`

	// resize the merged image by this factor before writing (1 is no-op)
	Scale float64 `yaml:"scale"`

	// also write a copy of the output with tile bounds drawn on
	Outline      bool   `yaml:"outline"`
	OutlineColor string `yaml:"outline_color"`

	// overwrite existing output files
	Overwrite bool `yaml:"overwrite"`

	// sqlite database recording merges. Empty disables it.
	Catalog string `yaml:"catalog"`
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Fill:         "#000000",
		JPEGQuality:  95,
		Scale:        1,
		OutlineColor: "#ff0000",
	}
}

// LoadConfig reads a yaml config file. Anything not set in the file keeps
// it's default value.
func LoadConfig(fname string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", fname, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the config values make sense
func (c *Config) Validate() error {
	if _, err := ParseColor(c.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if _, err := ParseColor(c.OutlineColor); err != nil {
		return fmt.Errorf("outline_color: %w", err)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be > 0, got %v", c.Scale)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be in [1, 100], got %d", c.JPEGQuality)
	}
	return nil
}

// FillColor returns the parsed padding colour
func (c *Config) FillColor() color.NRGBA {
	col, _ := ParseColor(c.Fill)
	return col
}

// ParseColor reads "#rrggbb" or "#rrggbbaa" (the '#' is optional).
func ParseColor(in string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(in, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", in)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", in, err)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
