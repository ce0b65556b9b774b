// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame drives a pipeline once per frame.
//
// A Driver starts Idle. Start waits for every pass to load and moves it to
// Running. Each Running frame then:
//
//  1. reads the surface size
//  2. on a change, records the new Dimensions and calls SetSize on every
//     pass in order
//  3. opens one full-screen quad scope, executes every pass in order and
//     blits the primary output of the last pass to the screen
//
// Resizing always completes for all passes before any pass executes in
// the same frame. A frame, once started, runs to completion; Cancel only
// stops further frames.
package frame
