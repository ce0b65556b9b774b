// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the graphics capability the pass pipeline draws with.
//
// # Key Principle
//
// The pipeline RECEIVES a graphics capability from the host, it does NOT
// create its own device. Passes get it through their shared context and
// use it to create render targets, compile programs and issue draws.
//
// # Core Types
//
//   - Graphics: the capability (targets, programs, quad binding, draws)
//   - Feature: hardware features, required or best-effort
//   - Target: a render target handle (Framebuffer, PixmapTarget)
//   - Program: a compiled WGSL program with a CPU fragment evaluator
//   - FullScreenQuad: the "draw over the whole frame" scope
//
// # Implementations
//
//   - SoftwareGraphics: CPU draws, naga-compiled programs
//
// # Usage
//
//	g := render.NewSoftwareGraphics(render.NullDeviceHandle{})
//	defer g.Close()
//	if err := render.CheckFeatures(g); err != nil {
//	    return err
//	}
//	quad := render.NewFullScreenQuad(g)
//	quad.Scope(func() {
//	    _ = g.Draw(program, target)
//	})
//
// # Thread Safety
//
// Graphics implementations are NOT thread-safe except for NewProgram,
// which passes call from their loading goroutines.
package render
