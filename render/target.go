// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/x448/float16"
)

// Target is a render target handle.
//
// A Target is an abstraction over different rendering destinations:
//   - Framebuffer: half-float offscreen target owned by a pass
//   - PixmapTarget: CPU-backed *image.RGBA, used for the screen
//
// Targets are written by draw calls and sampled by downstream programs.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Store writes one texel. Out-of-range coordinates are ignored.
	Store(x, y int, c Color)

	// Sample reads the target at normalized coordinates with
	// clamp-to-edge addressing.
	Sample(u, v float32) Color
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// It is the screen target: the final blit converts the last pass output
// to 8-bit color here, ready for upload or encoding.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Store writes a clamped 8-bit texel.
func (t *PixmapTarget) Store(x, y int, c Color) {
	if !(image.Point{x, y}.In(t.img.Rect)) {
		return
	}
	//nolint:gosec // G115: clamp01 keeps values in range
	t.img.SetRGBA(x, y, color.RGBA{
		R: uint8(clamp01(c[0])*255 + 0.5),
		G: uint8(clamp01(c[1])*255 + 0.5),
		B: uint8(clamp01(c[2])*255 + 0.5),
		A: uint8(clamp01(c[3])*255 + 0.5),
	})
}

// Sample returns the nearest texel.
func (t *PixmapTarget) Sample(u, v float32) Color {
	x, y := nearest(u, t.Width()), nearest(v, t.Height())
	p := t.img.RGBAAt(x, y)
	return Color{float32(p.R) / 255, float32(p.G) / 255, float32(p.B) / 255, float32(p.A) / 255}
}

// Resize reallocates the pixmap. The contents are not preserved.
// Resizing to the current dimensions is a no-op.
func (t *PixmapTarget) Resize(width, height int) {
	if width == t.Width() && height == t.Height() {
		return
	}
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Ensure PixmapTarget implements Target.
var _ Target = (*PixmapTarget)(nil)

// Framebuffer is a half-float offscreen render target.
//
// A framebuffer is exclusively owned by the pass that created it; other
// passes hold it only for sampling. Resize keeps the identity of the
// framebuffer, so references handed to downstream passes stay valid.
type Framebuffer struct {
	label  string
	width  int
	height int
	linear bool
	pix    []float16.Float16
}

// NewFramebuffer allocates a framebuffer from a descriptor.
// The linear flag enables bilinear filtering in Sample.
func NewFramebuffer(desc TextureDescriptor, linear bool) *Framebuffer {
	f := &Framebuffer{label: desc.Label, linear: linear}
	f.Resize(max(desc.Width, 1), max(desc.Height, 1))
	return f
}

// Label returns the debug label.
func (f *Framebuffer) Label() string { return f.label }

// Width returns the target width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the target height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Format returns RGBA16Float.
func (f *Framebuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA16Float
}

// Resize reallocates storage for the new dimensions and clears it.
// It reports whether the size changed; unchanged sizes keep the contents.
func (f *Framebuffer) Resize(width, height int) bool {
	if width == f.width && height == f.height && f.pix != nil {
		return false
	}
	f.width, f.height = width, height
	f.pix = make([]float16.Float16, width*height*4)
	return true
}

// Clear fills every texel with c.
func (f *Framebuffer) Clear(c Color) {
	h := [4]float16.Float16{
		float16.Fromfloat32(c[0]), float16.Fromfloat32(c[1]),
		float16.Fromfloat32(c[2]), float16.Fromfloat32(c[3]),
	}
	for i := 0; i < len(f.pix); i += 4 {
		copy(f.pix[i:i+4], h[:])
	}
}

// At returns the texel at (x, y), clamped to the edges.
func (f *Framebuffer) At(x, y int) Color {
	x = min(max(x, 0), f.width-1)
	y = min(max(y, 0), f.height-1)
	i := (y*f.width + x) * 4
	return Color{f.pix[i].Float32(), f.pix[i+1].Float32(), f.pix[i+2].Float32(), f.pix[i+3].Float32()}
}

// Store writes one texel.
func (f *Framebuffer) Store(x, y int, c Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = float16.Fromfloat32(c[0])
	f.pix[i+1] = float16.Fromfloat32(c[1])
	f.pix[i+2] = float16.Fromfloat32(c[2])
	f.pix[i+3] = float16.Fromfloat32(c[3])
}

// Sample reads the framebuffer at normalized coordinates.
func (f *Framebuffer) Sample(u, v float32) Color {
	if !f.linear {
		return f.At(nearest(u, f.width), nearest(v, f.height))
	}
	// Texel centers sit at (i + 0.5) / size.
	fx := float64(u)*float64(f.width) - 0.5
	fy := float64(v)*float64(f.height) - 0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := float32(fx-x0), float32(fy-y0)
	ix, iy := int(x0), int(y0)
	top := f.At(ix, iy).Lerp(f.At(ix+1, iy), tx)
	bottom := f.At(ix, iy+1).Lerp(f.At(ix+1, iy+1), tx)
	return top.Lerp(bottom, ty)
}

// Ensure Framebuffer implements Target.
var _ Target = (*Framebuffer)(nil)

// nearest maps a normalized coordinate to a clamped texel index.
func nearest(u float32, size int) int {
	i := int(math.Floor(float64(u) * float64(size)))
	return min(max(i, 0), size-1)
}
