// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Color is a linear RGBA color with float components.
// Pass outputs are unclamped; values above 1 carry bloom energy.
type Color [4]float32

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

// Add returns c + o component-wise.
func (c Color) Add(o Color) Color {
	return Color{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}
}

// Mul returns c * o component-wise.
func (c Color) Mul(o Color) Color {
	return Color{c[0] * o[0], c[1] * o[1], c[2] * o[2], c[3] * o[3]}
}

// Scale returns c * s.
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s, c[3] * s}
}

// Lerp interpolates between c and o.
func (c Color) Lerp(o Color, t float32) Color {
	return c.Add(o.Add(c.Scale(-1)).Scale(t))
}

// Luma returns the Rec. 709 luminance.
func (c Color) Luma() float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
