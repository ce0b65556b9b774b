// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config holds the user-facing settings consumed by the pipeline.
//
// The orchestrator itself reads only Resolution and Effect; the remaining
// fields are read by the concrete passes. Configuration files are TOML:
//
//	resolution = 0.75
//	effect = "pride"
//	bloomStrength = 0.7
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Color is a linear RGB triple in [0, 1].
type Color [3]float32

// PaletteStop maps a brightness level to a color in the palette pass.
type PaletteStop struct {
	Color Color   `toml:"color"`
	At    float32 `toml:"at"`
}

// Config is the pipeline configuration.
type Config struct {
	// Resolution scales the display size to the render size.
	Resolution float64 `toml:"resolution"`

	// Effect selects the color effect pass. Unknown names fall back to "plain".
	Effect string `toml:"effect"`

	NumColumns     int     `toml:"numColumns"`
	AnimationSpeed float64 `toml:"animationSpeed"`
	FallSpeed      float64 `toml:"fallSpeed"`
	Seed           int64   `toml:"seed"`

	BloomStrength float64 `toml:"bloomStrength"`
	BloomSize     float64 `toml:"bloomSize"`

	Palette         []PaletteStop `toml:"palette"`
	StripeColors    []Color       `toml:"stripeColors"`
	BackgroundImage string        `toml:"backgroundImage"`
}

// Validation errors.
var (
	ErrInvalidResolution = errors.New("config: resolution must be positive")
	ErrInvalidColumns    = errors.New("config: numColumns must be positive")
	ErrInvalidBloom      = errors.New("config: bloom settings must be within [0, 1]")
	ErrMissingBackground = errors.New("config: image effect needs backgroundImage")
)

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Resolution:     0.75,
		Effect:         "plain",
		NumColumns:     80,
		AnimationSpeed: 1,
		FallSpeed:      1,
		Seed:           1,
		BloomStrength:  0.7,
		BloomSize:      0.4,
		Palette: []PaletteStop{
			{Color: Color{0, 0, 0}, At: 0},
			{Color: Color{0.03, 0.31, 0.10}, At: 0.2},
			{Color: Color{0.21, 0.66, 0.33}, At: 0.6},
			{Color: Color{0.72, 1, 0.70}, At: 1},
		},
	}
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a TOML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !(c.Resolution > 0) || math.IsInf(c.Resolution, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidResolution, c.Resolution)
	}
	if c.NumColumns <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidColumns, c.NumColumns)
	}
	if c.BloomStrength < 0 || c.BloomStrength > 1 || c.BloomSize < 0 || c.BloomSize > 1 {
		return fmt.Errorf("%w: strength=%v size=%v", ErrInvalidBloom, c.BloomStrength, c.BloomSize)
	}
	if c.Effect == "image" && c.BackgroundImage == "" {
		return ErrMissingBackground
	}
	return nil
}

// CanvasSize converts a display size into render pixels:
// ceil(display * Resolution), never below one pixel.
func (c Config) CanvasSize(displayWidth, displayHeight int) (width, height int) {
	width = int(math.Ceil(float64(displayWidth) * c.Resolution))
	height = int(math.Ceil(float64(displayHeight) * c.Resolution))
	return max(width, 1), max(height, 1)
}
