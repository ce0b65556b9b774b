// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/lightfield/internal/logging"
)

// Device is one connected lightfield display.
type Device struct {
	// Serial identifies the display, if known.
	Serial string `json:"serial,omitempty"`

	// HardwareVersion names the device model, if known.
	HardwareVersion string `json:"hardwareVersion,omitempty"`

	// Calibration is nil when the device reports none.
	Calibration *CalibrationRecord `json:"calibration,omitempty"`
}

// Transport is an asynchronous source of connected devices.
//
// Subscribe must eventually call exactly one of onDevices or onError. The
// callbacks may run on any goroutine; extra calls are ignored by Resolve.
type Transport interface {
	Subscribe(ctx context.Context, onDevices func([]Device), onError func(error))
}

// ErrTransport wraps every failure reported by a transport.
var ErrTransport = errors.New("quilt: calibration transport failed")

type resolution struct {
	devices []Device
	err     error
}

// Resolve subscribes to t and derives the quilt parameters from the first
// reported device.
//
//   - no devices: Passthrough parameters, no optics are computed
//   - device without (usable) calibration: DefaultCalibration
//   - transport failure: an error wrapping ErrTransport
func Resolve(ctx context.Context, t Transport) (Parameters, error) {
	if t == nil {
		return Parameters{}, fmt.Errorf("%w: nil transport", ErrTransport)
	}

	result := make(chan resolution, 1)
	var once sync.Once
	deliver := func(r resolution) {
		once.Do(func() { result <- r })
	}

	t.Subscribe(ctx,
		func(devices []Device) { deliver(resolution{devices: devices}) },
		func(err error) {
			if err == nil {
				err = errors.New("unknown error")
			}
			deliver(resolution{err: err})
		},
	)

	var r resolution
	select {
	case r = <-result:
	case <-ctx.Done():
		return Parameters{}, fmt.Errorf("quilt: waiting for calibration: %w", ctx.Err())
	}
	if r.err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrTransport, r.err)
	}
	return fromDevices(r.devices), nil
}

// fromDevices derives parameters from a resolved device list.
func fromDevices(devices []Device) Parameters {
	log := logging.Logger()
	if len(devices) == 0 {
		log.Info("no lightfield device, using pass-through quilt")
		return Passthrough()
	}

	dev := devices[0]
	calibration := DefaultCalibration()
	switch {
	case dev.Calibration == nil:
		log.Warn("lightfield device reported no calibration, using defaults", "serial", dev.Serial)
	case dev.Calibration.Validate() != nil:
		log.Warn("lightfield device calibration unusable, using defaults",
			"serial", dev.Serial, "err", dev.Calibration.Validate())
	default:
		calibration = *dev.Calibration
	}

	params := Derive(calibration)
	log.Info("lightfield calibration resolved",
		"serial", calibration.Serial,
		"pitch", params.Pitch,
		"tilt", params.Tilt,
		"tiles", params.TileCount)
	return params
}
