// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/lightfield/internal/parallel"
)

// SoftwareGraphics is a CPU implementation of Graphics.
//
// Programs are still compiled from WGSL, so shader errors surface at load
// time exactly as on a GPU backend, but draws evaluate each program's
// FragmentFunc on the CPU, split into row bands across a worker pool.
//
// Example:
//
//	g := render.NewSoftwareGraphics(render.NullDeviceHandle{})
//	defer g.Close()
//	quad := render.NewFullScreenQuad(g)
type SoftwareGraphics struct {
	handle   DeviceHandle
	features map[Feature]bool
	compile  Compiler
	pool     *parallel.WorkerPool
	quad     *QuadGeometry
}

// SoftwareOption configures a SoftwareGraphics.
type SoftwareOption func(*SoftwareGraphics)

// WithFeatures replaces the reported feature set.
func WithFeatures(features ...Feature) SoftwareOption {
	return func(g *SoftwareGraphics) {
		g.features = make(map[Feature]bool, len(features))
		for _, f := range features {
			g.features[f] = true
		}
	}
}

// WithCompiler replaces the WGSL compiler.
func WithCompiler(c Compiler) SoftwareOption {
	return func(g *SoftwareGraphics) {
		g.compile = c
	}
}

// WithWorkers sets the number of draw workers (0 = GOMAXPROCS).
func WithWorkers(n int) SoftwareOption {
	return func(g *SoftwareGraphics) {
		g.pool = parallel.NewWorkerPool(n)
	}
}

// NewSoftwareGraphics creates a CPU graphics capability. By default it
// reports every required and optional feature.
func NewSoftwareGraphics(handle DeviceHandle, opts ...SoftwareOption) *SoftwareGraphics {
	if handle == nil {
		handle = NullDeviceHandle{}
	}
	g := &SoftwareGraphics{
		handle:  handle,
		compile: DefaultCompiler,
	}
	WithFeatures(append(append([]Feature{}, RequiredFeatures...), OptionalFeatures...)...)(g)
	for _, opt := range opts {
		opt(g)
	}
	if g.pool == nil {
		g.pool = parallel.NewWorkerPool(0)
	}
	return g
}

// DeviceHandle returns the host device handle.
func (g *SoftwareGraphics) DeviceHandle() DeviceHandle { return g.handle }

// Supports reports whether f is in the feature set.
func (g *SoftwareGraphics) Supports(f Feature) bool { return g.features[f] }

// NewFramebuffer creates a half-float framebuffer. Bilinear sampling is
// enabled when half-float linear filtering is supported.
func (g *SoftwareGraphics) NewFramebuffer(desc TextureDescriptor) (*Framebuffer, error) {
	if !g.Supports(FeatureHalfFloatTexture) {
		return nil, ErrMissingFeature
	}
	return NewFramebuffer(desc, g.Supports(FeatureHalfFloatLinear)), nil
}

// NewProgram compiles desc. Safe for concurrent use.
func (g *SoftwareGraphics) NewProgram(desc ProgramDescriptor) (*Program, error) {
	return compileProgram(g.handle, g.compile, desc)
}

// BindQuad binds quad geometry for subsequent draws.
func (g *SoftwareGraphics) BindQuad(q *QuadGeometry) { g.quad = q }

// UnbindQuad releases the bound geometry.
func (g *SoftwareGraphics) UnbindQuad() { g.quad = nil }

// Draw evaluates p for every pixel of target.
func (g *SoftwareGraphics) Draw(p *Program, target Target) error {
	if g.quad == nil {
		return ErrNoQuad
	}
	if p == nil || p.fragment == nil {
		return ErrNilProgram
	}
	if target == nil {
		return ErrNilTarget
	}

	quad := g.quad
	fragment := p.fragment
	w, h := target.Width(), target.Height()
	g.pool.Rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			t := (float32(y) + 0.5) / float32(h)
			for x := 0; x < w; x++ {
				s := (float32(x) + 0.5) / float32(w)
				u, v := quad.TexCoordAt(s, t)
				target.Store(x, y, fragment(Fragment{X: x, Y: y, U: u, V: v, Width: w, Height: h}))
			}
		}
	})
	return nil
}

// Close stops the draw workers.
func (g *SoftwareGraphics) Close() {
	g.pool.Close()
}

// Ensure SoftwareGraphics implements Graphics.
var _ Graphics = (*SoftwareGraphics)(nil)
