// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"math"

	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/quilt"
	"github.com/gogpu/lightfield/render"
)

// Quilt maps a quilt of views onto the lenticular display: each subpixel
// takes its color from the view its lens directs it to. Without a
// lightfield device it copies its input.
type Quilt struct {
	base

	source  render.Target
	params  quilt.Parameters
	program *render.Program
}

// NewQuilt creates the quilt pass from the resolved quilt parameters.
func NewQuilt(ctx pipeline.Context, input pipeline.Outputs) *Quilt {
	q := &Quilt{source: sourceOf(input), params: ctx.Quilt}
	if !q.setup("quilt", ctx) {
		return q
	}
	q.ready = pipeline.Load(func() error {
		p, err := q.compile("quilt", quiltShaderSource, q.shade)
		q.program = p
		return err
	})
	return q
}

// Execute draws the display image.
func (q *Quilt) Execute() {
	if !q.loaded() {
		return
	}
	q.draw(q.program, q.out)
}

func (q *Quilt) shade(f render.Fragment) render.Color {
	if !q.params.IsLightfield() {
		return q.source.Sample(f.U, f.V)
	}
	p := q.params
	u, v := float64(f.U), float64(f.V)
	if p.FlipX == 1 {
		u = 1 - u
	}
	if p.FlipY == 1 {
		v = 1 - v
	}
	c := render.Color{0, 0, 0, 1}
	for i := range 3 {
		tu, tv := tileUV(p, u, v, subpixelView(p, u, v, i))
		c[i] = q.source.Sample(float32(tu), float32(tv))[i]
	}
	return c
}

// subpixelView returns the view position in [0, 1] seen through the lens
// covering subpixel i of the display pixel at (u, v).
func subpixelView(p quilt.Parameters, u, v float64, i int) float64 {
	z := (u+float64(i)*p.Subp+v*p.Tilt)*p.Pitch - p.Center
	z = fract(z)
	return (1-p.InvView)*z + p.InvView*(1-z)
}

// tileUV maps (u, v) within the view at position z to quilt coordinates.
// Views are numbered from the bottom-left tile, row by row, and the quilt
// is trimmed to its usable view portion.
func tileUV(p quilt.Parameters, u, v, z float64) (float64, float64) {
	cols, rows := float64(p.TileCount[0]), float64(p.TileCount[1])
	views := cols * rows
	view := math.Min(math.Floor(z*views), views-1)
	x := (math.Mod(view, cols) + u) / cols
	y := (math.Floor(view/cols) + v) / rows
	return x * p.ViewPortion[0], y * p.ViewPortion[1]
}
