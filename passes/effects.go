// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/pipeline"
)

// factory adapts a typed pass constructor to a pipeline.Factory.
func factory[P pipeline.Pass](newPass func(pipeline.Context, pipeline.Outputs) P) pipeline.Factory {
	return func(ctx pipeline.Context, input pipeline.Outputs) pipeline.Pass {
		return newPass(ctx, input)
	}
}

// Pass factories of the default pipeline.
var (
	RainFactory         = factory(NewRain)
	BloomFactory        = factory(NewBloom)
	PaletteFactory      = factory(NewPalette)
	StripeFactory       = factory(NewStripe)
	ImageFactory        = factory(NewImage)
	ResurrectionFactory = factory(NewResurrection)
	QuiltFactory        = factory(NewQuilt)
)

// Effects maps every effect to its pass. EffectNone has no pass.
var Effects = pipeline.EffectTable{
	pipeline.EffectPlain:        PaletteFactory,
	pipeline.EffectNone:         nil,
	pipeline.EffectStripes:      StripeFactory,
	pipeline.EffectImage:        ImageFactory,
	pipeline.EffectResurrection: ResurrectionFactory,
}

// Factories returns the default pipeline for cfg: rain, bloom, the
// configured effect and quilt.
func Factories(cfg config.Config) []pipeline.Factory {
	return FactoriesWith(Effects, cfg)
}

// FactoriesWith is Factories with a custom effect table.
func FactoriesWith(effects pipeline.EffectTable, cfg config.Config) []pipeline.Factory {
	return []pipeline.Factory{
		RainFactory,
		BloomFactory,
		effects.Lookup(cfg.Effect),
		QuiltFactory,
	}
}
