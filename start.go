// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lightfield

import (
	"context"
	"errors"

	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/frame"
	"github.com/gogpu/lightfield/internal/logging"
	"github.com/gogpu/lightfield/passes"
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/quilt"
	"github.com/gogpu/lightfield/render"
)

// Options configures Start.
type Options struct {
	// Graphics is the graphics capability. Required.
	Graphics render.Graphics

	// Surface is the surface frames are presented to. Required.
	Surface frame.Surface

	// Config holds the settings. The zero value means config.Default().
	Config config.Config

	// Transport yields the lightfield device calibration. Nil means no
	// device: the quilt pass copies its input.
	Transport quilt.Transport

	// Effects overrides the effect table. Nil means passes.Effects.
	Effects pipeline.EffectTable
}

// Start performs the asynchronous startup sequence and returns a running
// frame driver:
//
//  1. check required graphics features
//  2. resolve the quilt parameters from the calibration transport
//  3. build the rain, bloom, effect and quilt pipeline
//  4. wait until every pass has loaded
//
// Every failure is a *StartupError matching ErrStartup. Start blocks
// until startup completes or ctx is done.
func Start(ctx context.Context, opts Options) (*frame.Driver, error) {
	log := logging.Logger()

	cfg := opts.Config
	if cfg.Resolution == 0 && cfg.Effect == "" {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, startupError(StageConfig, err)
	}
	if opts.Graphics == nil || opts.Surface == nil {
		return nil, startupError(StageConfig, errors.New("graphics and surface are required"))
	}

	if err := render.CheckFeatures(opts.Graphics); err != nil {
		return nil, startupError(StageFeatures, err)
	}

	transport := opts.Transport
	if transport == nil {
		transport = quilt.StaticTransport{}
	}
	params, err := quilt.Resolve(ctx, transport)
	if err != nil {
		return nil, startupError(StageCalibration, err)
	}

	effects := opts.Effects
	if effects == nil {
		effects = passes.Effects
	}
	quad := render.NewFullScreenQuad(opts.Graphics)
	pctx := pipeline.Context{
		Graphics: opts.Graphics,
		Quad:     quad,
		Config:   cfg,
		Quilt:    params,
	}
	p, err := pipeline.Build(pctx, passes.FactoriesWith(effects, cfg))
	if err != nil {
		return nil, startupError(StagePipeline, err)
	}

	driver := frame.NewDriver(opts.Graphics, quad, p, opts.Surface)
	if err := driver.Start(ctx); err != nil {
		p.Destroy()
		return nil, startupError(StageReady, err)
	}
	log.Info("lightfield started",
		"effect", cfg.Effect,
		"passes", p.Names(),
		"lightfield", params.IsLightfield())
	return driver, nil
}
