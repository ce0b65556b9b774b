// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"slices"

	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

// paletteSize is the number of entries in the palette lookup table.
const paletteSize = 256

// Palette maps the brightness of its input onto a color ramp. It is the
// plain effect.
type Palette struct {
	base

	source  render.Target
	lut     []render.Color
	program *render.Program
}

// NewPalette creates the palette pass from the configured color stops.
func NewPalette(ctx pipeline.Context, input pipeline.Outputs) *Palette {
	p := &Palette{
		source: sourceOf(input),
		lut:    buildPalette(ctx.Config.Palette, paletteSize),
	}
	if !p.setup("palette", ctx) {
		return p
	}
	p.ready = pipeline.Load(func() error {
		prog, err := p.compile("palette", paletteShaderSource, p.shade)
		p.program = prog
		return err
	})
	return p
}

// Execute draws the palette-mapped input.
func (p *Palette) Execute() {
	if !p.loaded() {
		return
	}
	p.draw(p.program, p.out)
}

func (p *Palette) shade(f render.Fragment) render.Color {
	b := brightness(p.source.Sample(f.U, f.V))
	return p.lut[int(b*float32(len(p.lut)-1)+0.5)]
}

// buildPalette samples the piecewise-linear ramp through stops at n
// evenly spaced brightness levels. Without stops the ramp is grayscale.
func buildPalette(stops []config.PaletteStop, n int) []render.Color {
	lut := make([]render.Color, n)
	if len(stops) == 0 {
		for i := range lut {
			v := float32(i) / float32(n-1)
			lut[i] = render.RGB(v, v, v)
		}
		return lut
	}

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b config.PaletteStop) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})

	for i := range lut {
		x := float32(i) / float32(n-1)
		lut[i] = rampAt(sorted, x)
	}
	return lut
}

// rampAt evaluates sorted stops at x, clamping outside the first and
// last stop.
func rampAt(stops []config.PaletteStop, x float32) render.Color {
	first, last := stops[0], stops[len(stops)-1]
	if x <= first.At {
		return stopColor(first)
	}
	if x >= last.At {
		return stopColor(last)
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if x > hi.At {
			continue
		}
		t := (x - lo.At) / (hi.At - lo.At)
		return stopColor(lo).Lerp(stopColor(hi), t)
	}
	return stopColor(last)
}

func stopColor(s config.PaletteStop) render.Color {
	return render.RGB(s.Color[0], s.Color[1], s.Color[2])
}
