// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestReadyResolvesOnce(t *testing.T) {
	r := NewReady()
	if r.Err() != nil {
		t.Errorf("Err() before resolve = %v, want nil", r.Err())
	}
	select {
	case <-r.Done():
		t.Fatal("Done() closed before Resolve")
	default:
	}

	first := errors.New("first")
	if !r.Resolve(first) {
		t.Error("first Resolve() = false, want true")
	}
	if r.Resolve(nil) {
		t.Error("second Resolve() = true, want false")
	}
	if !errors.Is(r.Err(), first) {
		t.Errorf("Err() = %v, want %v", r.Err(), first)
	}
	if err := r.Wait(context.Background()); !errors.Is(err, first) {
		t.Errorf("Wait() = %v, want %v", err, first)
	}
}

func TestReadyConcurrentResolve(t *testing.T) {
	r := NewReady()
	var wg sync.WaitGroup
	wins := make(chan bool, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- r.Resolve(nil)
		}()
	}
	wg.Wait()
	close(wins)
	count := 0
	for w := range wins {
		if w {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d Resolve calls won, want 1", count)
	}
}

func TestLoad(t *testing.T) {
	if err := Load(func() error { return nil }).Wait(context.Background()); err != nil {
		t.Errorf("Load(ok).Wait() = %v", err)
	}
	cause := errors.New("decode failed")
	if err := Load(func() error { return cause }).Wait(context.Background()); !errors.Is(err, cause) {
		t.Errorf("Load(fail).Wait() = %v, want %v", err, cause)
	}
	if err := Load(func() error { panic("boom") }).Wait(context.Background()); err == nil {
		t.Error("Load(panic).Wait() = nil, want error")
	}
}

func TestReadyWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewReady().Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
}
