// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"encoding/json"
	"fmt"
)

// CalibrationRecord is the raw calibration reported by a display.
// The flip fields are 0 or 1.
type CalibrationRecord struct {
	ConfigVersion string
	Serial        string
	Pitch         float64
	Slope         float64
	Center        float64
	ViewCone      float64
	InvView       float64
	VerticalAngle float64
	DPI           float64
	ScreenW       float64
	ScreenH       float64
	FlipImageX    float64
	FlipImageY    float64
	FlipSubp      float64
}

// DefaultCalibration is used for a device that reports no calibration.
func DefaultCalibration() CalibrationRecord {
	return CalibrationRecord{
		ConfigVersion: "1.0",
		Serial:        "00000",
		Pitch:         47.556365966796878,
		Slope:         -5.488804340362549,
		Center:        0.15815216302871705,
		ViewCone:      40.0,
		InvView:       1.0,
		VerticalAngle: 0.0,
		DPI:           338.0,
		ScreenW:       2560.0,
		ScreenH:       1600.0,
		FlipImageX:    0.0,
		FlipImageY:    0.0,
		FlipSubp:      0.0,
	}
}

// calibrationNumber decodes either a bare JSON number or the
// {"value": n} wrapper used by visual.json files.
type calibrationNumber float64

func (n *calibrationNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = calibrationNumber(f)
		return nil
	}
	var wrapped struct {
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("quilt: calibration value %s: %w", data, err)
	}
	if wrapped.Value == nil {
		return fmt.Errorf("quilt: calibration value %s has no \"value\" field", data)
	}
	*n = calibrationNumber(*wrapped.Value)
	return nil
}

// calibrationJSON is the wire shape of a calibration record.
type calibrationJSON struct {
	ConfigVersion string            `json:"configVersion"`
	Serial        string            `json:"serial"`
	Pitch         calibrationNumber `json:"pitch"`
	Slope         calibrationNumber `json:"slope"`
	Center        calibrationNumber `json:"center"`
	ViewCone      calibrationNumber `json:"viewCone"`
	InvView       calibrationNumber `json:"invView"`
	VerticalAngle calibrationNumber `json:"verticalAngle"`
	DPI           calibrationNumber `json:"DPI"`
	ScreenW       calibrationNumber `json:"screenW"`
	ScreenH       calibrationNumber `json:"screenH"`
	FlipImageX    calibrationNumber `json:"flipImageX"`
	FlipImageY    calibrationNumber `json:"flipImageY"`
	FlipSubp      calibrationNumber `json:"flipSubp"`
}

// UnmarshalJSON decodes a calibration record. Numeric fields may be bare
// numbers or {"value": n} objects.
func (c *CalibrationRecord) UnmarshalJSON(data []byte) error {
	var raw calibrationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CalibrationRecord{
		ConfigVersion: raw.ConfigVersion,
		Serial:        raw.Serial,
		Pitch:         float64(raw.Pitch),
		Slope:         float64(raw.Slope),
		Center:        float64(raw.Center),
		ViewCone:      float64(raw.ViewCone),
		InvView:       float64(raw.InvView),
		VerticalAngle: float64(raw.VerticalAngle),
		DPI:           float64(raw.DPI),
		ScreenW:       float64(raw.ScreenW),
		ScreenH:       float64(raw.ScreenH),
		FlipImageX:    float64(raw.FlipImageX),
		FlipImageY:    float64(raw.FlipImageY),
		FlipSubp:      float64(raw.FlipSubp),
	}
	return nil
}

// Validate reports calibration values the optics transform cannot use.
func (c CalibrationRecord) Validate() error {
	switch {
	case c.DPI <= 0:
		return fmt.Errorf("quilt: calibration %s: DPI must be positive, got %v", c.Serial, c.DPI)
	case c.ScreenW <= 0 || c.ScreenH <= 0:
		return fmt.Errorf("quilt: calibration %s: invalid screen size %vx%v", c.Serial, c.ScreenW, c.ScreenH)
	case c.Slope == 0:
		return fmt.Errorf("quilt: calibration %s: slope must be non-zero", c.Serial)
	}
	return nil
}
