// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quilt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTransport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visual.json")
	if err := os.WriteFile(path, []byte(visualJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(context.Background(), FileTransport{Path: path})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := Derive(DefaultCalibration()); got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestFileTransportMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	got, err := Resolve(context.Background(), FileTransport{Path: path})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.IsLightfield() {
		t.Errorf("missing file should resolve to pass-through, got %+v", got)
	}
}

func TestFileTransportMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visual.json")
	if err := os.WriteFile(path, []byte(`{"pitch": `), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(context.Background(), FileTransport{Path: path}); !errors.Is(err, ErrTransport) {
		t.Errorf("Resolve() error = %v, want ErrTransport", err)
	}
}
