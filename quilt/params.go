// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import "math"

// QuiltResolution is the quilt edge length, in pixels, for the supported
// device family.
const QuiltResolution = 3360

// DefaultTileCount is the quilt layout (columns, rows) for the supported
// device family.
var DefaultTileCount = [2]int{8, 6}

// Parameters are the normalized lightfield parameters read by the quilt pass.
// They are immutable once resolved.
type Parameters struct {
	Pitch   float64
	Tilt    float64
	Center  float64
	InvView float64
	FlipX   float64
	FlipY   float64
	Subp    float64

	// QuiltResolution is the quilt edge length in pixels.
	QuiltResolution int

	// TileCount is the number of quilt (columns, rows).
	TileCount [2]int

	// ViewPortion is the usable fraction of the quilt on each axis after
	// trimming it to a whole number of tiles.
	ViewPortion [2]float64
}

// Passthrough returns the parameters used without a lightfield device: a
// single tile and no optics, so the quilt pass copies its input.
func Passthrough() Parameters {
	return Parameters{TileCount: [2]int{1, 1}}
}

// IsLightfield reports whether the parameters describe a multi-view quilt.
func (p Parameters) IsLightfield() bool {
	return p.TileCount[0]*p.TileCount[1] > 1
}

// Views returns the number of views packed into the quilt.
func (p Parameters) Views() int {
	return p.TileCount[0] * p.TileCount[1]
}

// ViewPortion trims a quilt of the given resolution to whole tiles:
// floor(resolution / tiles[i]) * tiles[i] / resolution for each axis.
func ViewPortion(resolution int, tiles [2]int) [2]float64 {
	var portion [2]float64
	for i, n := range tiles {
		portion[i] = float64((resolution/n)*n) / float64(resolution)
	}
	return portion
}

// Derive computes quilt parameters from a calibration record.
func Derive(c CalibrationRecord) Parameters {
	screenInches := c.ScreenW / c.DPI

	pitch := c.Pitch * screenInches
	pitch *= math.Cos(math.Atan(1.0 / c.Slope))

	tilt := c.ScreenH / (c.ScreenW * c.Slope)
	if c.FlipImageX == 1 {
		tilt *= -1
	}

	return Parameters{
		Pitch:           pitch,
		Tilt:            tilt,
		Center:          c.Center,
		InvView:         c.InvView,
		FlipX:           c.FlipImageX,
		FlipY:           c.FlipImageY,
		Subp:            1 / (c.ScreenW * 3),
		QuiltResolution: QuiltResolution,
		TileCount:       DefaultTileCount,
		ViewPortion:     ViewPortion(QuiltResolution, DefaultTileCount),
	}
}
