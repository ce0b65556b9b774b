// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/render"
)

// Canvas is a CPU-backed Surface whose render size follows the display
// size scaled by the configured resolution.
type Canvas struct {
	cfg      config.Config
	screen   *render.PixmapTarget
	displayW int
	displayH int
}

// NewCanvas creates a canvas for a display of the given size.
func NewCanvas(cfg config.Config, displayW, displayH int) *Canvas {
	w, h := cfg.CanvasSize(displayW, displayH)
	return &Canvas{
		cfg:      cfg,
		screen:   render.NewPixmapTarget(w, h),
		displayW: displayW,
		displayH: displayH,
	}
}

// Resize handles a display size change. The render size becomes
// ceil(display * resolution). The screen keeps its identity.
func (c *Canvas) Resize(displayW, displayH int) {
	if displayW == c.displayW && displayH == c.displayH {
		return
	}
	c.displayW, c.displayH = displayW, displayH
	c.screen.Resize(c.cfg.CanvasSize(displayW, displayH))
}

// DisplaySize returns the last display size.
func (c *Canvas) DisplaySize() (width, height int) {
	return c.displayW, c.displayH
}

// Size returns the render size.
func (c *Canvas) Size() (width, height int) {
	return c.screen.Width(), c.screen.Height()
}

// Screen returns the screen target.
func (c *Canvas) Screen() render.Target {
	return c.screen
}

// Pixmap returns the screen as a pixmap for upload or encoding.
func (c *Canvas) Pixmap() *render.PixmapTarget {
	return c.screen
}

var _ Surface = (*Canvas)(nil)
