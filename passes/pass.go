// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"fmt"
	"math"

	"github.com/gogpu/lightfield/internal/logging"
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

// base holds the state shared by every pass: the context, the primary
// output and the loading signal.
type base struct {
	name     string
	ctx      pipeline.Context
	out      *render.Framebuffer
	outputs  pipeline.Outputs
	ready    *pipeline.Ready
	programs []*render.Program
}

// setup allocates the primary output. A failure is reported through Ready
// so construction stays synchronous.
func (b *base) setup(name string, ctx pipeline.Context) bool {
	b.name = name
	b.ctx = ctx
	out, err := ctx.Graphics.NewFramebuffer(render.DefaultTextureDescriptor(name, 1, 1))
	if err != nil {
		b.ready = pipeline.Resolved(fmt.Errorf("passes: %s: output: %w", name, err))
		return false
	}
	b.out = out
	b.outputs = pipeline.Outputs{pipeline.OutputPrimary: out}
	return true
}

// Name returns the pass name.
func (b *base) Name() string { return b.name }

// Ready resolves once the pass programs are compiled.
func (b *base) Ready() *pipeline.Ready { return b.ready }

// Outputs returns the primary output.
func (b *base) Outputs() pipeline.Outputs { return b.outputs }

// SetSize resizes the primary output.
func (b *base) SetSize(width, height int) {
	if b.out != nil {
		b.out.Resize(width, height)
	}
}

// Destroy releases the compiled programs. It waits for loading to settle
// first: programs are compiled on the loading goroutine.
func (b *base) Destroy() {
	if b.ready != nil {
		<-b.ready.Done()
	}
	for _, p := range b.programs {
		p.Destroy()
	}
	b.programs = nil
}

// loaded reports whether Ready resolved without error.
func (b *base) loaded() bool {
	select {
	case <-b.ready.Done():
		return b.ready.Err() == nil
	default:
		return false
	}
}

// compile builds a full-screen program from a fragment shader.
func (b *base) compile(label, source string, fragment render.FragmentFunc) (*render.Program, error) {
	p, err := b.ctx.Graphics.NewProgram(render.ProgramDescriptor{
		Label:    b.name + "/" + label,
		Source:   render.FullScreenVertexSource() + source,
		Fragment: fragment,
	})
	if err != nil {
		return nil, fmt.Errorf("passes: %s: compile %s: %w", b.name, label, err)
	}
	b.programs = append(b.programs, p)
	return p, nil
}

// draw runs p over target inside a quad scope. Failures are logged; a
// frame never fails.
func (b *base) draw(p *render.Program, target render.Target) {
	b.ctx.Quad.Scope(func() {
		if err := b.ctx.Graphics.Draw(p, target); err != nil {
			logging.Logger().Warn("passes: draw failed", "pass", b.name, "err", err)
		}
	})
}

// sourceOf returns the upstream primary output, or a black texel when
// the pass has no upstream.
func sourceOf(input pipeline.Outputs) render.Target {
	if src := input.Primary(); src != nil {
		return src
	}
	return render.NewFramebuffer(render.DefaultTextureDescriptor("black", 1, 1), false)
}

// brightness is the clamped luminance of a color.
func brightness(c render.Color) float32 {
	return min(max(c.Luma(), 0), 1)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

func smoothstep(e0, e1, x float32) float32 {
	t := min(max((x-e0)/(e1-e0), 0), 1)
	return t * t * (3 - 2*t)
}

// hash12 is the usual sine hash of a 2D point into [0, 1).
func hash12(x, y float64) float64 {
	return fract(math.Sin(x*12.9898+y*78.233) * 43758.5453)
}
