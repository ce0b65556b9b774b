// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuhost presents lightfield frames in a gogpu window.
//
// The frame driver renders into a CPU screen target; a Presenter uploads
// that target into a window texture and draws it each frame:
//
//	app := gogpu.NewApp(gogpu.DefaultConfig().WithTitle("lightfield"))
//	presenter := gogpuhost.NewPresenter()
//	defer presenter.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.Resize(dc.Width(), dc.Height())
//	    driver.Frame()
//	    _ = presenter.Present(dc.AsTextureDrawer(), canvas.Pixmap())
//	})
//
// The screen target is usually smaller than the window (see
// config.Config.Resolution); the window texture has the target's size.
package gogpuhost
