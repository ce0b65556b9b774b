// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
)

//go:embed shaders/fullscreen.wgsl
var fullscreenShaderSource string

//go:embed shaders/blit.wgsl
var blitShaderSource string

// FullScreenVertexSource returns the shared vertex stage every full-screen
// program is prefixed with. It declares VertexOutput and vs_main.
func FullScreenVertexSource() string {
	return fullscreenShaderSource
}

// NewBlitProgram compiles the program that copies src to the screen.
// Screen targets are stored top row first, so the blit flips V.
func NewBlitProgram(g Graphics, src Target) (*Program, error) {
	return g.NewProgram(ProgramDescriptor{
		Label:  "blit",
		Source: fullscreenShaderSource + blitShaderSource,
		Fragment: func(f Fragment) Color {
			c := src.Sample(f.U, 1-f.V)
			c[3] = 1
			return c
		},
	})
}
