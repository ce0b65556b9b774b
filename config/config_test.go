// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if cfg.Effect != "plain" {
		t.Errorf("Default().Effect = %q, want %q", cfg.Effect, "plain")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
resolution = 0.5
effect = "transPride"
bloomStrength = 0.3
stripeColors = [[1.0, 0.0, 0.0], [0.0, 0.0, 1.0]]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Default()
	want.Resolution = 0.5
	want.Effect = "transPride"
	want.BloomStrength = 0.3
	want.StripeColors = []Color{{1, 0, 0}, {0, 0, 1}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero resolution", "resolution = 0.0", ErrInvalidResolution},
		{"negative resolution", "resolution = -1.0", ErrInvalidResolution},
		{"no columns", "numColumns = 0", ErrInvalidColumns},
		{"bloom too strong", "bloomStrength = 2.0", ErrInvalidBloom},
		{"image without background", `effect = "image"`, ErrMissingBackground},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.data, err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("effect = \"image\"\nbackgroundImage = \"bg.png\"")); err != nil {
		t.Errorf("Parse() image effect with background error = %v", err)
	}
	if _, err := Parse([]byte("resolution = ")); err == nil {
		t.Error("Parse() with malformed TOML should fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightfield.toml")
	if err := os.WriteFile(path, []byte(`effect = "pride"`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Effect != "pride" {
		t.Errorf("Load().Effect = %q, want %q", cfg.Effect, "pride")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name       string
		resolution float64
		w, h       int
		wantW      int
		wantH      int
	}{
		{"identity", 1, 800, 600, 800, 600},
		{"three quarters", 0.75, 1024, 768, 768, 576},
		{"rounds up", 0.75, 801, 601, 601, 451},
		{"hidpi", 2, 640, 480, 1280, 960},
		{"empty display", 1, 0, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Resolution = tt.resolution
			w, h := cfg.CanvasSize(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CanvasSize(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
