// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/lightfield/internal/logging"
	"github.com/gogpu/lightfield/pipeline"
	"github.com/gogpu/lightfield/render"
)

// State is the driver lifecycle state.
type State int32

const (
	// StateIdle is the state before the pipeline is ready.
	StateIdle State = iota

	// StateRunning is the steady per-frame state.
	StateRunning
)

// String returns the state name.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Dimensions is the last viewport size seen by the driver.
type Dimensions struct {
	Width, Height int
}

// Surface is the rendering surface the driver presents to.
type Surface interface {
	// Size returns the current render size in pixels.
	Size() (width, height int)

	// Screen returns the target the final blit writes to.
	Screen() render.Target
}

// Driver errors.
var (
	// ErrNoPrimaryOutput is returned by Start when the last pass has no
	// primary output to show.
	ErrNoPrimaryOutput = errors.New("frame: last pass has no primary output")

	// ErrNotRunning is returned by Run before Start succeeded.
	ErrNotRunning = errors.New("frame: driver is not running")
)

// Driver runs the per-frame loop of a pipeline.
//
// Frame must be called from a single goroutine. State, Frames and Cancel
// are safe to call from any goroutine.
type Driver struct {
	graphics render.Graphics
	quad     *render.FullScreenQuad
	pipeline *pipeline.Pipeline
	surface  Surface

	blit *render.Program
	dims Dimensions

	state  atomic.Int32
	frames atomic.Uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// NewDriver creates an Idle driver. The quad and pipeline are shared with
// the passes; the driver owns only its blit program and Dimensions.
func NewDriver(g render.Graphics, quad *render.FullScreenQuad, p *pipeline.Pipeline, surface Surface) *Driver {
	return &Driver{
		graphics: g,
		quad:     quad,
		pipeline: p,
		surface:  surface,
		stop:     make(chan struct{}),
	}
}

// Start waits for every pass to become ready and compiles the screen
// blit, then moves the driver to Running. On failure the driver stays
// Idle. Calling Start on a running driver does nothing.
func (d *Driver) Start(ctx context.Context) error {
	if d.State() == StateRunning {
		return nil
	}
	primary := d.pipeline.Last().Outputs().Primary()
	if primary == nil {
		return fmt.Errorf("%w: %s", ErrNoPrimaryOutput, d.pipeline.Last().Name())
	}

	var blit *render.Program
	blitReady := pipeline.Load(func() error {
		var err error
		blit, err = render.NewBlitProgram(d.graphics, primary)
		return err
	})

	if err := d.pipeline.AwaitReady(ctx); err != nil {
		<-blitReady.Done()
		blit.Destroy()
		return err
	}
	if err := blitReady.Wait(ctx); err != nil {
		return fmt.Errorf("frame: blit program: %w", err)
	}
	d.blit = blit
	d.state.Store(int32(StateRunning))
	logging.Logger().Info("frame driver running", "passes", d.pipeline.Names())
	return nil
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return State(d.state.Load())
}

// Dimensions returns the last viewport size the passes were sized to.
// It must be called from the frame goroutine.
func (d *Driver) Dimensions() Dimensions {
	return d.dims
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Pipeline returns the driven pipeline.
func (d *Driver) Pipeline() *pipeline.Pipeline {
	return d.pipeline
}

// Surface returns the surface the driver presents to.
func (d *Driver) Surface() Surface {
	return d.surface
}

// Frame renders one frame. It reports whether a frame was rendered: it
// does nothing while Idle, after Cancel, or for an empty surface.
func (d *Driver) Frame() bool {
	if d.State() != StateRunning || d.Cancelled() {
		return false
	}
	w, h := d.surface.Size()
	if w <= 0 || h <= 0 {
		return false
	}

	if dims := (Dimensions{Width: w, Height: h}); dims != d.dims {
		logging.Logger().Debug("frame: resize", "width", w, "height", h)
		d.dims = dims
		d.pipeline.SetSize(w, h)
	}

	d.quad.Scope(func() {
		d.pipeline.Execute()
		if err := d.graphics.Draw(d.blit, d.surface.Screen()); err != nil {
			logging.Logger().Warn("frame: screen blit failed", "err", err)
		}
	})
	d.frames.Add(1)
	return true
}

// Run renders a frame on every clock tick until ctx is done or Cancel is
// called. It stops the clock before returning.
func (d *Driver) Run(ctx context.Context, clock Clock) error {
	defer clock.Stop()
	if d.State() != StateRunning {
		return ErrNotRunning
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stop:
			return nil
		case <-clock.Ticks():
			d.Frame()
		}
	}
}

// RunFrames renders exactly n frames, one per clock tick, and returns. A
// nil clock renders them back to back. It stops early when ctx is done or
// Cancel is called, and stops the clock before returning.
func (d *Driver) RunFrames(ctx context.Context, clock Clock, n int) error {
	if clock != nil {
		defer clock.Stop()
	}
	if d.State() != StateRunning {
		return ErrNotRunning
	}
	for rendered := 0; rendered < n; {
		if clock != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-d.stop:
				return nil
			case <-clock.Ticks():
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Frame() {
			if d.Cancelled() {
				return nil
			}
			continue
		}
		rendered++
	}
	return nil
}

// Cancel stops frame delivery. A frame in progress completes.
func (d *Driver) Cancel() {
	d.stopOnce.Do(func() {
		close(d.stop)
		logging.Logger().Debug("frame driver cancelled", "frames", d.Frames())
	})
}

// Cancelled reports whether Cancel was called.
func (d *Driver) Cancelled() bool {
	select {
	case <-d.stop:
		return true
	default:
		return false
	}
}

// Destroy releases the blit program and the pipeline resources.
func (d *Driver) Destroy() {
	d.Cancel()
	d.blit.Destroy()
	d.blit = nil
	d.pipeline.Destroy()
}
