// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"
)

// stubCompiler accepts any source without invoking naga.
func stubCompiler(string, string) ([]uint32, error) {
	return []uint32{0x07230203}, nil
}

func newTestGraphics(t *testing.T, opts ...SoftwareOption) *SoftwareGraphics {
	t.Helper()
	g := NewSoftwareGraphics(nil, append([]SoftwareOption{WithCompiler(stubCompiler), WithWorkers(2)}, opts...)...)
	t.Cleanup(g.Close)
	return g
}

func TestSoftwareGraphicsDefaults(t *testing.T) {
	g := newTestGraphics(t)

	if _, ok := g.DeviceHandle().(NullDeviceHandle); !ok {
		t.Errorf("DeviceHandle() = %T, want NullDeviceHandle", g.DeviceHandle())
	}
	for _, f := range append(append([]Feature{}, RequiredFeatures...), OptionalFeatures...) {
		if !g.Supports(f) {
			t.Errorf("Supports(%q) = false, want true", f)
		}
	}
}

func TestSoftwareGraphicsDrawRequiresQuad(t *testing.T) {
	g := newTestGraphics(t)
	p, err := g.NewProgram(ProgramDescriptor{
		Label:    "solid",
		Source:   "unused",
		Fragment: func(Fragment) Color { return RGB(1, 0, 0) },
	})
	if err != nil {
		t.Fatalf("NewProgram() error = %v", err)
	}
	target := NewPixmapTarget(4, 4)

	if err := g.Draw(p, target); !errors.Is(err, ErrNoQuad) {
		t.Errorf("Draw() outside scope error = %v, want %v", err, ErrNoQuad)
	}

	quad := NewFullScreenQuad(g)
	quad.Scope(func() {
		if err := g.Draw(p, target); err != nil {
			t.Errorf("Draw() error = %v", err)
		}
		if err := g.Draw(nil, target); !errors.Is(err, ErrNilProgram) {
			t.Errorf("Draw(nil) error = %v, want %v", err, ErrNilProgram)
		}
		if err := g.Draw(p, nil); !errors.Is(err, ErrNilTarget) {
			t.Errorf("Draw(p, nil) error = %v, want %v", err, ErrNilTarget)
		}
	})

	for y := range 4 {
		for x := range 4 {
			if px := target.Image().RGBAAt(x, y); px.R != 255 || px.G != 0 || px.A != 255 {
				t.Fatalf("pixel (%d, %d) = %v, want red", x, y, px)
			}
		}
	}
}

func TestSoftwareGraphicsDrawFragmentCoordinates(t *testing.T) {
	g := newTestGraphics(t)
	p, err := g.NewProgram(ProgramDescriptor{
		Label:  "uv",
		Source: "unused",
		Fragment: func(f Fragment) Color {
			return Color{f.U, f.V, float32(f.Width), float32(f.Height)}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	fb, err := g.NewFramebuffer(DefaultTextureDescriptor("uv", 4, 2))
	if err != nil {
		t.Fatal(err)
	}
	NewFullScreenQuad(g).Scope(func() {
		if err := g.Draw(p, fb); err != nil {
			t.Fatal(err)
		}
	})

	got := fb.At(1, 1)
	want := Color{0.375, 0.75, 4, 2}
	if !colorApprox(got, want) {
		t.Errorf("At(1, 1) = %v, want %v", got, want)
	}
}

func TestSoftwareGraphicsNewProgramErrors(t *testing.T) {
	g := newTestGraphics(t)
	if _, err := g.NewProgram(ProgramDescriptor{Label: "nofrag", Source: "x"}); !errors.Is(err, ErrNilProgram) {
		t.Errorf("NewProgram() without fragment error = %v, want %v", err, ErrNilProgram)
	}

	failing := errors.New("bad wgsl")
	g2 := newTestGraphics(t, WithCompiler(func(string, string) ([]uint32, error) { return nil, failing }))
	_, err := g2.NewProgram(ProgramDescriptor{Label: "bad", Source: "x", Fragment: func(Fragment) Color { return Color{} }})
	if !errors.Is(err, failing) {
		t.Errorf("NewProgram() error = %v, want %v", err, failing)
	}
}

func TestSoftwareGraphicsFramebufferNeedsHalfFloat(t *testing.T) {
	g := newTestGraphics(t, WithFeatures())
	if _, err := g.NewFramebuffer(DefaultTextureDescriptor("x", 1, 1)); !errors.Is(err, ErrMissingFeature) {
		t.Errorf("NewFramebuffer() error = %v, want %v", err, ErrMissingFeature)
	}
}

func TestBlitProgramFlipsRows(t *testing.T) {
	g := newTestGraphics(t)
	src, err := g.NewFramebuffer(DefaultTextureDescriptor("src", 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	// Row 0 is the bottom of the frame.
	src.Store(0, 0, RGB(1, 0, 0))
	src.Store(0, 1, RGB(0, 0, 1))

	blit, err := NewBlitProgram(g, src)
	if err != nil {
		t.Fatalf("NewBlitProgram() error = %v", err)
	}
	screen := NewPixmapTarget(1, 2)
	NewFullScreenQuad(g).Scope(func() {
		if err := g.Draw(blit, screen); err != nil {
			t.Fatal(err)
		}
	})

	if top := screen.Image().RGBAAt(0, 0); top.B != 255 {
		t.Errorf("top screen row = %v, want blue", top)
	}
	if bottom := screen.Image().RGBAAt(0, 1); bottom.R != 255 {
		t.Errorf("bottom screen row = %v, want red", bottom)
	}
}

func TestBlitShaderCompiles(t *testing.T) {
	if _, err := DefaultCompiler("blit", FullScreenVertexSource()+blitShaderSource); err != nil {
		t.Fatalf("blit shader failed to compile: %v", err)
	}
}
