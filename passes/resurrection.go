// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

var (
	resurrectionEmber = render.RGB(0.85, 0.45, 0.12)
	resurrectionGlow  = render.RGB(0.55, 0.95, 1.0)
)

// Resurrection tints dim glyphs amber and lets the brightest ones glow
// cyan.
type Resurrection struct {
	base

	source  render.Target
	program *render.Program
}

// NewResurrection creates the resurrection pass.
func NewResurrection(ctx pipeline.Context, input pipeline.Outputs) *Resurrection {
	p := &Resurrection{source: sourceOf(input)}
	if !p.setup("resurrection", ctx) {
		return p
	}
	p.ready = pipeline.Load(func() error {
		prog, err := p.compile("resurrection", resurrectionShaderSource, p.shade)
		p.program = prog
		return err
	})
	return p
}

// Execute draws the tinted input.
func (p *Resurrection) Execute() {
	if !p.loaded() {
		return
	}
	p.draw(p.program, p.out)
}

func (p *Resurrection) shade(f render.Fragment) render.Color {
	b := brightness(p.source.Sample(f.U, f.V))
	c := resurrectionEmber.Scale(b).Lerp(resurrectionGlow, smoothstep(0.6, 1, b))
	c[3] = 1
	return c
}
