// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import "context"

// StaticTransport reports a fixed device list, or a fixed error.
// The zero value reports no devices.
type StaticTransport struct {
	Devices []Device
	Err     error
}

// Subscribe calls back synchronously.
func (t StaticTransport) Subscribe(_ context.Context, onDevices func([]Device), onError func(error)) {
	if t.Err != nil {
		onError(t.Err)
		return
	}
	onDevices(t.Devices)
}
