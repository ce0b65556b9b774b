// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const visualJSON = `{
	"configVersion": "1.0",
	"serial": "LKG-2K-01234",
	"pitch": {"value": 47.556365966796878},
	"slope": {"value": -5.488804340362549},
	"center": {"value": 0.15815216302871705},
	"viewCone": {"value": 40.0},
	"invView": {"value": 1.0},
	"verticalAngle": {"value": 0.0},
	"DPI": {"value": 338.0},
	"screenW": {"value": 2560.0},
	"screenH": {"value": 1600.0},
	"flipImageX": {"value": 0.0},
	"flipImageY": {"value": 0.0},
	"flipSubp": {"value": 0.0}
}`

func TestCalibrationUnmarshalWrapped(t *testing.T) {
	var got CalibrationRecord
	if err := json.Unmarshal([]byte(visualJSON), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := DefaultCalibration()
	want.Serial = "LKG-2K-01234"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalibrationUnmarshalBareNumbers(t *testing.T) {
	var got CalibrationRecord
	data := `{"serial": "x", "pitch": 50, "slope": -5, "DPI": 300, "screenW": 1536, "screenH": 2048, "flipImageX": 1}`
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := CalibrationRecord{Serial: "x", Pitch: 50, Slope: -5, DPI: 300, ScreenW: 1536, ScreenH: 2048, FlipImageX: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalibrationUnmarshalErrors(t *testing.T) {
	for _, data := range []string{
		`{"pitch": "wide"}`,
		`{"pitch": {"val": 3}}`,
		`[1, 2]`,
	} {
		var c CalibrationRecord
		if err := json.Unmarshal([]byte(data), &c); err == nil {
			t.Errorf("Unmarshal(%s) should fail", data)
		}
	}
}

func TestCalibrationValidate(t *testing.T) {
	if err := DefaultCalibration().Validate(); err != nil {
		t.Errorf("DefaultCalibration().Validate() = %v", err)
	}
	tests := []struct {
		name   string
		modify func(*CalibrationRecord)
	}{
		{"zero DPI", func(c *CalibrationRecord) { c.DPI = 0 }},
		{"zero width", func(c *CalibrationRecord) { c.ScreenW = 0 }},
		{"negative height", func(c *CalibrationRecord) { c.ScreenH = -1 }},
		{"zero slope", func(c *CalibrationRecord) { c.Slope = 0 }},
	}
	for _, tt := range tests {
		c := DefaultCalibration()
		tt.modify(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}
