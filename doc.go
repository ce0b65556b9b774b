// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lightfield renders digital rain on lenticular lightfield displays.
//
// # Overview
//
// lightfield composes render passes into a pipeline, drives it once per
// frame and finishes every frame with a quilt pass that maps a quilt of
// views onto the subpixels of the display. It also runs on an ordinary
// 2D display: without a lightfield device the quilt pass copies its input.
//
// # Quick Start
//
//	import "github.com/gogpu/lightfield"
//
//	g := render.NewSoftwareGraphics(render.NullDeviceHandle{})
//	defer g.Close()
//	canvas := frame.NewCanvas(config.Default(), 1280, 720)
//
//	driver, err := lightfield.Start(ctx, lightfield.Options{
//	    Graphics:  g,
//	    Surface:   canvas,
//	    Config:    config.Default(),
//	    Transport: quilt.FileTransport{Path: "visual.json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	driver.Run(ctx, frame.NewTickerClock(60))
//
// # Startup
//
// Start is the single startup operation. It checks the required graphics
// features, resolves the display calibration, builds the pipeline and
// waits for every pass to load. Any failure aborts startup with an error
// matching ErrStartup; the frame loop never starts half-built.
//
// Unknown effect names and devices without calibration are not errors:
// they fall back to the plain effect and the default calibration.
//
// # Packages
//
//   - config: settings and TOML loading
//   - render: graphics capability, render targets, full-screen quad
//   - quilt: calibration records, quilt parameters, calibration transports
//   - pipeline: pass contract, readiness, pipeline builder, effect table
//   - frame: frame driver, clocks, canvas surface
//   - passes: rain, bloom, effect and quilt passes
//   - integration/gogpuhost: presents frames in a gogpu window
//
// # Logging
//
// lightfield is silent by default. Call SetLogger to enable log output.
package lightfield
