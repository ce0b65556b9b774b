// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package passes provides the concrete render passes of the rain pipeline.
//
// The default pipeline is:
//
//	rain -> bloom -> effect -> quilt
//
// where the effect stage is selected from Effects by the configured effect
// name. Every pass owns a half-float primary output, compiles its program
// on a loading goroutine and resolves its Ready signal when done.
//
// Each program is written twice: as WGSL for GPU backends and as a Go
// fragment function for render.SoftwareGraphics. Both compute the same
// image.
package passes
