package main

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/lightfield"
	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/frame"
	"github.com/gogpu/lightfield/render"
)

func TestLauncherReportsStartupFailure(t *testing.T) {
	l := newLauncher()
	cause := errors.New("no device")
	failed := make(chan error, 1)
	calls := 0
	start := func() (*frame.Driver, error) {
		calls++
		return nil, cause
	}

	l.launch(start, func(err error) { failed <- err })
	l.launch(start, func(err error) { failed <- err })

	if err := <-failed; !errors.Is(err, cause) {
		t.Errorf("onFailure(%v), want %v", err, cause)
	}
	<-l.done
	if !errors.Is(l.Err(), cause) {
		t.Errorf("Err() = %v, want %v", l.Err(), cause)
	}
	if l.Driver() != nil {
		t.Error("Driver() != nil after a failed startup")
	}
	if calls != 1 {
		t.Errorf("start called %d times, want 1", calls)
	}
}

func TestLauncherPublishesDriver(t *testing.T) {
	g := render.NewSoftwareGraphics(nil, render.WithCompiler(func(string, string) ([]uint32, error) {
		return []uint32{0x07230203}, nil
	}), render.WithWorkers(2))
	t.Cleanup(g.Close)
	cfg := config.Default()

	l := newLauncher()
	l.launch(func() (*frame.Driver, error) {
		return lightfield.Start(context.Background(), lightfield.Options{
			Graphics: g,
			Surface:  frame.NewCanvas(cfg, 16, 16),
			Config:   cfg,
		})
	}, func(err error) { t.Errorf("onFailure(%v)", err) })
	<-l.done

	d := l.Driver()
	if d == nil {
		t.Fatalf("Driver() = nil, Err() = %v", l.Err())
	}
	t.Cleanup(d.Destroy)
	if d.State() != frame.StateRunning {
		t.Errorf("State() = %v, want running", d.State())
	}
	if l.Err() != nil {
		t.Errorf("Err() = %v, want nil", l.Err())
	}
}
