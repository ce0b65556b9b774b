// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"math"

	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

// rainFrameRate converts frame counts to animation time.
const rainFrameRate = 60

// Rain draws columns of falling glyph cells. It is the first pass and
// ignores its input.
type Rain struct {
	base

	columns   float64
	fallSpeed float64
	animSpeed float64
	seed      float64

	frame   uint64
	time    float64
	program *render.Program
}

// NewRain creates the rain pass.
func NewRain(ctx pipeline.Context, _ pipeline.Outputs) *Rain {
	r := &Rain{
		columns:   float64(max(ctx.Config.NumColumns, 1)),
		fallSpeed: ctx.Config.FallSpeed,
		animSpeed: ctx.Config.AnimationSpeed,
		seed:      float64(ctx.Config.Seed % 65536),
	}
	if !r.setup("rain", ctx) {
		return r
	}
	r.ready = pipeline.Load(func() error {
		p, err := r.compile("rain", rainShaderSource, r.shade)
		r.program = p
		return err
	})
	return r
}

// Execute advances the animation by one frame and draws the rain.
func (r *Rain) Execute() {
	if !r.loaded() {
		return
	}
	r.time = float64(r.frame) / rainFrameRate * r.animSpeed
	r.frame++
	r.draw(r.program, r.out)
}

func (r *Rain) shade(f render.Fragment) render.Color {
	rows := math.Max(math.Floor(r.columns*float64(f.Height)/math.Max(float64(f.Width), 1)), 1)
	gx, gy := float64(f.U)*r.columns, float64(f.V)*rows
	cx, cy := math.Floor(gx), math.Floor(gy)
	glyphX, glyphY := math.Floor(fract(gx)*3), math.Floor(fract(gy)*3)

	speed := 0.5 + hash12(cx, r.seed)
	offset := hash12(r.seed, cx)
	fall := fract(offset - cy/rows - r.time*r.fallSpeed*speed*0.25)

	tick := math.Floor(r.time * speed * 4)
	lit := step(0.35, hash12(cx*3+glyphX+tick, cy*3+glyphY))
	b := float32(math.Pow(fall, 4) * lit)
	return render.Color{b, b, b, 1}
}
