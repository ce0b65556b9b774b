// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/quilt"
	"github.com/gogpu/lightfield/render"
)

// OutputPrimary is the output every pass provides and the next pass reads.
const OutputPrimary = "primary"

// Outputs maps logical output names to render targets.
//
// The targets are owned by the pass that produced them. Downstream passes
// hold the map only for reading; target identity is stable across frames.
type Outputs map[string]render.Target

// Primary returns the primary output, or nil.
func (o Outputs) Primary() render.Target {
	return o[OutputPrimary]
}

// Pass is one stage of the render pipeline.
type Pass interface {
	// Name identifies the pass in logs and errors.
	Name() string

	// Ready resolves once the pass has loaded its resources.
	Ready() *Ready

	// SetSize reconfigures the pass render targets. It is idempotent and
	// never called concurrently with Execute.
	SetSize(width, height int)

	// Execute issues the draws for one frame. It runs inside the frame's
	// full-screen quad scope.
	Execute()

	// Outputs returns the pass render targets. The map and its targets
	// keep their identity across SetSize calls.
	Outputs() Outputs
}

// Context is shared by every pass in a pipeline.
type Context struct {
	// Graphics creates targets and programs and issues draws.
	Graphics render.Graphics

	// Quad is the shared full-screen quad.
	Quad *render.FullScreenQuad

	// Config holds the effect settings.
	Config config.Config

	// Quilt holds the resolved lightfield parameters.
	Quilt quilt.Parameters
}

// Factory constructs a pass from the shared context and the outputs of
// the previous pass (nil for the first pass). Construction must return
// quickly; slow loading belongs behind the pass Ready signal.
type Factory func(ctx Context, input Outputs) Pass
