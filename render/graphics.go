// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Graphics is the graphics capability the pipeline renders with.
//
// It creates render targets and programs, binds full-screen quad geometry,
// and issues draw calls. Passes receive it through their shared context
// and never own it.
//
// Thread Safety: NewProgram may be called from resource-loading goroutines.
// Every other method must be called from the frame goroutine.
type Graphics interface {
	// DeviceHandle returns the host device the capability renders with.
	DeviceHandle() DeviceHandle

	// Supports reports whether a hardware feature is available.
	Supports(f Feature) bool

	// NewFramebuffer creates an offscreen render target.
	NewFramebuffer(desc TextureDescriptor) (*Framebuffer, error)

	// NewProgram compiles a program. Compilation may be slow; passes call
	// it while loading, before the pipeline starts running.
	NewProgram(desc ProgramDescriptor) (*Program, error)

	// BindQuad binds quad geometry for subsequent draws.
	BindQuad(q *QuadGeometry)

	// UnbindQuad releases the bound geometry.
	UnbindQuad()

	// Draw runs the program over the bound quad into target.
	Draw(p *Program, target Target) error
}

// Draw errors.
var (
	// ErrNoQuad is returned by Draw outside of a full-screen quad scope.
	ErrNoQuad = errors.New("render: draw without bound quad geometry")

	// ErrNilProgram is returned by Draw for a nil or destroyed program.
	ErrNilProgram = errors.New("render: nil program")

	// ErrNilTarget is returned by Draw for a nil target.
	ErrNilTarget = errors.New("render: nil target")
)
