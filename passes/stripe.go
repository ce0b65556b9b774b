// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

// stripePresets are the stripe colors of the named stripe effects.
var stripePresets = map[string][]config.Color{
	"stripes": {
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	},
	"pride": {
		{0.89, 0.01, 0.01},
		{1, 0.55, 0},
		{1, 0.93, 0},
		{0, 0.5, 0.15},
		{0, 0.3, 1},
		{0.46, 0.03, 0.53},
	},
	"trans": {
		{0.36, 0.81, 0.98},
		{0.96, 0.66, 0.72},
		{1, 1, 1},
		{0.96, 0.66, 0.72},
		{0.36, 0.81, 0.98},
	},
}

func init() {
	stripePresets["transPride"] = stripePresets["trans"]
}

// StripeColors returns the stripe colors for an effect name. The
// "stripes" and "customStripes" effects use the configured colors when
// there are any; other names use their preset.
func StripeColors(cfg config.Config) []config.Color {
	switch cfg.Effect {
	case "stripes", "customStripes":
		if len(cfg.StripeColors) > 0 {
			return cfg.StripeColors
		}
		return stripePresets["stripes"]
	}
	if preset, ok := stripePresets[cfg.Effect]; ok {
		return preset
	}
	return stripePresets["stripes"]
}

// Stripe multiplies the brightness of its input by vertical color
// stripes.
type Stripe struct {
	base

	source  render.Target
	colors  []render.Color
	program *render.Program
}

// NewStripe creates the stripe pass.
func NewStripe(ctx pipeline.Context, input pipeline.Outputs) *Stripe {
	s := &Stripe{source: sourceOf(input)}
	for _, c := range StripeColors(ctx.Config) {
		s.colors = append(s.colors, render.RGB(c[0], c[1], c[2]))
	}
	if !s.setup("stripe", ctx) {
		return s
	}
	s.ready = pipeline.Load(func() error {
		p, err := s.compile("stripe", stripeShaderSource, s.shade)
		s.program = p
		return err
	})
	return s
}

// Execute draws the striped input.
func (s *Stripe) Execute() {
	if !s.loaded() {
		return
	}
	s.draw(s.program, s.out)
}

func (s *Stripe) shade(f render.Fragment) render.Color {
	b := s.source.Sample(f.U, f.V).Luma()
	n := len(s.colors)
	i := min(max(int(f.U*float32(n)), 0), n-1)
	c := s.colors[i].Scale(b)
	c[3] = 1
	return c
}
