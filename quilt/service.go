// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultServiceURL is the local display service endpoint.
const DefaultServiceURL = "ws://localhost:11222/driver"

// ServiceTransport queries the local display service over a websocket.
//
// It sends one info request and decodes the JSON reply:
//
//	{"error": 0, "devices": [{"serial": "...", "calibration": {...}}]}
//
// A non-zero error code, a dial failure, or a malformed reply is a
// transport failure.
type ServiceTransport struct {
	// URL defaults to DefaultServiceURL.
	URL string

	// Dialer defaults to websocket.DefaultDialer.
	Dialer *websocket.Dialer

	// Timeout bounds the whole exchange. Zero means 5 seconds.
	Timeout time.Duration
}

type serviceRequest struct {
	Cmd map[string]struct{} `json:"cmd"`
}

type serviceReply struct {
	Error   int      `json:"error"`
	Devices []Device `json:"devices"`
}

// Subscribe performs the exchange on a separate goroutine.
func (t ServiceTransport) Subscribe(ctx context.Context, onDevices func([]Device), onError func(error)) {
	go func() {
		devices, err := t.query(ctx)
		if err != nil {
			onError(err)
			return
		}
		onDevices(devices)
	}()
}

func (t ServiceTransport) query(ctx context.Context) ([]Device, error) {
	url := t.URL
	if url == "" {
		url = DefaultServiceURL
	}
	dialer := t.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
		_ = conn.SetWriteDeadline(deadline)
	}

	req := serviceRequest{Cmd: map[string]struct{}{"info": {}}}
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("send info request: %w", err)
	}

	var reply serviceReply
	if err := conn.ReadJSON(&reply); err != nil {
		return nil, fmt.Errorf("read info reply: %w", err)
	}
	if reply.Error != 0 {
		return nil, fmt.Errorf("service error code %d", reply.Error)
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return reply.Devices, nil
}
