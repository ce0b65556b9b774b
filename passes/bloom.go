// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

const (
	// bloomTaps is the number of one-sided kernel weights, center included.
	bloomTaps = 16

	// bloomSigma is the kernel standard deviation in blur texels.
	bloomSigma = 5.0
)

// Bloom adds a blurred copy of its input to itself. The blur runs at a
// reduced resolution set by the bloom size.
type Bloom struct {
	base

	source   render.Target
	blurX    *render.Framebuffer
	blurY    *render.Framebuffer
	weights  []float64
	strength float32
	scale    float64

	horizontal *render.Program
	vertical   *render.Program
	combine    *render.Program
}

// NewBloom creates the bloom pass reading input's primary output.
func NewBloom(ctx pipeline.Context, input pipeline.Outputs) *Bloom {
	b := &Bloom{
		source:   sourceOf(input),
		weights:  gaussianKernel(bloomTaps, bloomSigma),
		strength: float32(ctx.Config.BloomStrength),
		scale:    ctx.Config.BloomSize,
	}
	if !b.setup("bloom", ctx) {
		return b
	}
	b.blurX = render.NewFramebuffer(render.DefaultTextureDescriptor("bloom/x", 1, 1), true)
	b.blurY = render.NewFramebuffer(render.DefaultTextureDescriptor("bloom/y", 1, 1), true)
	b.ready = pipeline.Load(func() error {
		var err error
		if b.horizontal, err = b.compile("blur-x", bloomBlurShaderSource, b.blur(b.source, true)); err != nil {
			return err
		}
		if b.vertical, err = b.compile("blur-y", bloomBlurShaderSource, b.blur(b.blurX, false)); err != nil {
			return err
		}
		b.combine, err = b.compile("combine", bloomCombineShaderSource, b.shadeCombine)
		return err
	})
	return b
}

// SetSize resizes the output and the reduced blur targets.
func (b *Bloom) SetSize(width, height int) {
	b.base.SetSize(width, height)
	if b.blurX == nil {
		return
	}
	bw := max(int(math.Ceil(float64(width)*b.scale)), 1)
	bh := max(int(math.Ceil(float64(height)*b.scale)), 1)
	b.blurX.Resize(bw, bh)
	b.blurY.Resize(bw, bh)
}

// Execute blurs horizontally, then vertically, then combines.
func (b *Bloom) Execute() {
	if !b.loaded() {
		return
	}
	b.draw(b.horizontal, b.blurX)
	b.draw(b.vertical, b.blurY)
	b.draw(b.combine, b.out)
}

// blur returns a separable Gaussian blur of src along one axis. Offsets
// are in texels of the blur target.
func (b *Bloom) blur(src render.Target, horizontal bool) render.FragmentFunc {
	return func(f render.Fragment) render.Color {
		var du, dv float32
		if horizontal {
			du = 1 / float32(f.Width)
		} else {
			dv = 1 / float32(f.Height)
		}
		sum := src.Sample(f.U, f.V).Scale(float32(b.weights[0]))
		for i := 1; i < len(b.weights); i++ {
			w := float32(b.weights[i])
			ou, ov := du*float32(i), dv*float32(i)
			sum = sum.Add(src.Sample(f.U+ou, f.V+ov).Scale(w))
			sum = sum.Add(src.Sample(f.U-ou, f.V-ov).Scale(w))
		}
		sum[3] = 1
		return sum
	}
}

func (b *Bloom) shadeCombine(f render.Fragment) render.Color {
	c := b.source.Sample(f.U, f.V).Add(b.blurY.Sample(f.U, f.V).Scale(b.strength))
	c[3] = 1
	return c
}

// gaussianKernel returns one side of a normalized Gaussian kernel: taps
// weights, center first, such that the center plus both sides sum to 1.
func gaussianKernel(taps int, sigma float64) []float64 {
	w := make([]float64, taps)
	for i := range w {
		x := float64(i)
		w[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	total := 2*floats.Sum(w) - w[0]
	floats.Scale(1/total, w)
	return w
}
