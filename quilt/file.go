// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileTransport reads a display's visual.json calibration file, as found
// on the display's own storage volume.
//
// A missing file means no device is connected. A file that exists but
// cannot be read or decoded is a transport failure.
type FileTransport struct {
	Path string
}

// Subscribe reads the file on a separate goroutine.
func (t FileTransport) Subscribe(ctx context.Context, onDevices func([]Device), onError func(error)) {
	go func() {
		if err := ctx.Err(); err != nil {
			onError(err)
			return
		}
		devices, err := t.read()
		if err != nil {
			onError(err)
			return
		}
		onDevices(devices)
	}()
}

func (t FileTransport) read() ([]Device, error) {
	data, err := os.ReadFile(t.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var calibration CalibrationRecord
	if err := json.Unmarshal(data, &calibration); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.Path, err)
	}
	return []Device{{Serial: calibration.Serial, Calibration: &calibration}}, nil
}
