// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeService answers one info request with reply.
func fakeService(t *testing.T, reply any) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var req map[string]map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if _, ok := req["cmd"]["info"]; !ok {
			return
		}
		_ = conn.WriteJSON(reply)
		_, _, _ = conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestServiceTransport(t *testing.T) {
	cal := DefaultCalibration()
	cal.FlipImageX = 1
	srv := fakeService(t, map[string]any{
		"error": 0,
		"devices": []map[string]any{{
			"serial":          "LKG-A",
			"hardwareVersion": "portrait",
			"calibration": map[string]any{
				"serial":     "LKG-A",
				"pitch":      map[string]float64{"value": cal.Pitch},
				"slope":      map[string]float64{"value": cal.Slope},
				"center":     map[string]float64{"value": cal.Center},
				"invView":    map[string]float64{"value": cal.InvView},
				"DPI":        map[string]float64{"value": cal.DPI},
				"screenW":    map[string]float64{"value": cal.ScreenW},
				"screenH":    map[string]float64{"value": cal.ScreenH},
				"flipImageX": map[string]float64{"value": 1},
			},
		}},
	})

	got, err := Resolve(context.Background(), ServiceTransport{URL: wsURL(srv)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := Derive(DefaultCalibration())
	if got.Tilt != -want.Tilt {
		t.Errorf("Tilt = %v, want %v", got.Tilt, -want.Tilt)
	}
	if got.Pitch != want.Pitch {
		t.Errorf("Pitch = %v, want %v", got.Pitch, want.Pitch)
	}
}

func TestServiceTransportNoDevices(t *testing.T) {
	srv := fakeService(t, map[string]any{"error": 0, "devices": []any{}})

	got, err := Resolve(context.Background(), ServiceTransport{URL: wsURL(srv)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != Passthrough() {
		t.Errorf("Resolve() = %+v, want pass-through", got)
	}
}

func TestServiceTransportErrorCode(t *testing.T) {
	srv := fakeService(t, map[string]any{"error": 3})

	_, err := Resolve(context.Background(), ServiceTransport{URL: wsURL(srv)})
	if !errors.Is(err, ErrTransport) {
		t.Errorf("Resolve() error = %v, want ErrTransport", err)
	}
}

func TestServiceTransportDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := wsURL(srv)
	srv.Close()

	_, err := Resolve(context.Background(), ServiceTransport{URL: url, Timeout: time.Second})
	if !errors.Is(err, ErrTransport) {
		t.Errorf("Resolve() error = %v, want ErrTransport", err)
	}
}
