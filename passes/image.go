// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoding
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/gogpu/lightfield/internal/logging"
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

// maxBackgroundSize bounds the longer edge of a decoded background.
const maxBackgroundSize = 2048

// ErrNoBackground is reported by the image pass when no background image
// is configured.
var ErrNoBackground = errors.New("passes: no background image configured")

// Image multiplies the brightness of its input by a background image.
// The image is decoded while the pass loads; a missing or undecodable
// image fails the pass.
type Image struct {
	base

	source     render.Target
	background *image.RGBA
	program    *render.Program
}

// NewImage creates the image pass for the configured background image.
func NewImage(ctx pipeline.Context, input pipeline.Outputs) *Image {
	p := &Image{source: sourceOf(input)}
	if !p.setup("image", ctx) {
		return p
	}
	path := ctx.Config.BackgroundImage
	p.ready = pipeline.Load(func() error {
		if path == "" {
			return ErrNoBackground
		}
		bg, err := loadBackground(path)
		if err != nil {
			return err
		}
		p.background = bg
		prog, err := p.compile("image", imageShaderSource, p.shade)
		p.program = prog
		return err
	})
	return p
}

// Execute draws the image-tinted input.
func (p *Image) Execute() {
	if !p.loaded() {
		return
	}
	p.draw(p.program, p.out)
}

func (p *Image) shade(f render.Fragment) render.Color {
	b := p.source.Sample(f.U, f.V).Luma()
	c := sampleImage(p.background, f.U, 1-f.V).Scale(b)
	c[3] = 1
	return c
}

// loadBackground decodes the image at path.
func loadBackground(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("passes: background: %w", err)
	}
	defer f.Close()
	return decodeBackground(f)
}

// decodeBackground decodes an image and scales it so that its longer
// edge is at most maxBackgroundSize.
func decodeBackground(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("passes: background: %w", err)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("passes: background: empty %s image", format)
	}
	if edge := max(w, h); edge > maxBackgroundSize {
		w = max(w*maxBackgroundSize/edge, 1)
		h = max(h*maxBackgroundSize/edge, 1)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}
	logging.Logger().Debug("passes: background decoded", "format", format, "width", w, "height", h)
	return dst, nil
}

// sampleImage reads img at normalized coordinates with (0, 0) at the top
// left, nearest texel, clamped to the edges.
func sampleImage(img *image.RGBA, u, v float32) render.Color {
	b := img.Bounds()
	x := min(max(int(u*float32(b.Dx())), 0), b.Dx()-1)
	y := min(max(int(v*float32(b.Dy())), 0), b.Dy()-1)
	c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
	return rgbaColor(c)
}

func rgbaColor(c color.RGBA) render.Color {
	return render.Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
