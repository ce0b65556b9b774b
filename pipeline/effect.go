// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import "github.com/gogpu/lightfield/internal/logging"

// Effect selects the color effect stage of the pipeline.
type Effect int

const (
	// EffectPlain maps brightness to a palette. It is the default.
	EffectPlain Effect = iota

	// EffectNone leaves the effect slot empty.
	EffectNone

	// EffectStripes multiplies brightness by vertical color stripes.
	EffectStripes

	// EffectImage multiplies brightness by a background image.
	EffectImage

	// EffectResurrection applies the two-tone glow.
	EffectResurrection
)

// String returns the canonical effect name.
func (e Effect) String() string {
	switch e {
	case EffectPlain:
		return "plain"
	case EffectNone:
		return "none"
	case EffectStripes:
		return "stripes"
	case EffectImage:
		return "image"
	case EffectResurrection:
		return "resurrection"
	default:
		return "unknown"
	}
}

// effectNames lists every accepted configuration name.
var effectNames = map[string]Effect{
	"none":          EffectNone,
	"plain":         EffectPlain,
	"customStripes": EffectStripes,
	"stripes":       EffectStripes,
	"pride":         EffectStripes,
	"transPride":    EffectStripes,
	"trans":         EffectStripes,
	"image":         EffectImage,
	"resurrection":  EffectResurrection,
	"resurrections": EffectResurrection,
}

// ParseEffect maps a configured name to an effect. Unknown names map to
// EffectPlain and ok is false.
func ParseEffect(name string) (e Effect, ok bool) {
	e, ok = effectNames[name]
	if !ok {
		return EffectPlain, false
	}
	return e, true
}

// EffectTable maps effects to pass factories. A nil factory leaves the
// effect slot empty.
type EffectTable map[Effect]Factory

// Lookup returns the factory for a configured effect name. Names that
// are unknown, or whose effect has no entry, use the EffectPlain entry.
func (t EffectTable) Lookup(name string) Factory {
	e, ok := ParseEffect(name)
	if !ok {
		logging.Logger().Debug("pipeline: unknown effect, using plain", "effect", name)
	}
	if f, ok := t[e]; ok {
		return f
	}
	return t[EffectPlain]
}
