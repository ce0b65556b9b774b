// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package quilt derives lightfield quilt parameters from device calibration.
//
// A quilt packs many per-angle views of a scene into one tiled image. The
// quilt pass maps that image onto the lenticular panel using optical
// parameters (pitch, tilt, center, subpixel size) derived from the raw
// calibration a display reports.
//
// Resolve subscribes to a Transport and resolves exactly once:
//
//	params, err := quilt.Resolve(ctx, quilt.FileTransport{Path: "LKG_calibration/visual.json"})
//	if err != nil {
//	    return err // transport failure is fatal
//	}
//	if !params.IsLightfield() {
//	    // no device: render as a plain 2D display
//	}
//
// An empty device list resolves to pass-through parameters; a device
// without calibration resolves with DefaultCalibration. A transport
// failure is never replaced by defaults.
package quilt
