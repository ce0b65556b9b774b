// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lightfield

import (
	"errors"
	"fmt"
)

// ErrStartup matches every error returned by Start.
var ErrStartup = errors.New("lightfield: startup failed")

// Stage names the startup step that failed.
type Stage string

// Startup stages, in order.
const (
	StageConfig      Stage = "config"
	StageFeatures    Stage = "features"
	StageCalibration Stage = "calibration"
	StagePipeline    Stage = "pipeline"
	StageReady       Stage = "ready"
)

// StartupError is a fatal startup failure.
type StartupError struct {
	Stage Stage
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("lightfield: startup failed (%s): %v", e.Stage, e.Err)
}

// Unwrap returns the cause.
func (e *StartupError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStartup.
func (e *StartupError) Is(target error) bool { return target == ErrStartup }

func startupError(stage Stage, err error) error {
	return &StartupError{Stage: stage, Err: err}
}
