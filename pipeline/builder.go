// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/lightfield/internal/logging"
)

// Build errors.
var (
	// ErrEmptyPipeline is returned when no factory produced a pass.
	ErrEmptyPipeline = errors.New("pipeline: no passes")

	// ErrNilPass is returned when a factory returns a nil pass.
	ErrNilPass = errors.New("pipeline: factory returned nil pass")
)

// Pipeline is an ordered, immutable sequence of passes.
type Pipeline struct {
	passes []Pass
}

// Build instantiates the factories in order. Each factory receives the
// outputs of the pass built before it; the first receives nil. Nil
// factories are skipped, which is how an effect slot is left empty.
func Build(ctx Context, factories []Factory) (*Pipeline, error) {
	log := logging.Logger()
	var (
		passes []Pass
		input  Outputs
	)
	for i, factory := range factories {
		if factory == nil {
			log.Debug("pipeline: skipping empty slot", "index", i)
			continue
		}
		pass := factory(ctx, input)
		if pass == nil {
			return nil, fmt.Errorf("%w (slot %d)", ErrNilPass, i)
		}
		passes = append(passes, pass)
		input = pass.Outputs()
	}
	if len(passes) == 0 {
		return nil, ErrEmptyPipeline
	}
	p := &Pipeline{passes: passes}
	log.Debug("pipeline built", "passes", p.Names())
	return p, nil
}

// Len returns the number of passes.
func (p *Pipeline) Len() int { return len(p.passes) }

// Passes returns the passes in execution order.
func (p *Pipeline) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// Last returns the final pass, whose primary output reaches the screen.
func (p *Pipeline) Last() Pass {
	return p.passes[len(p.passes)-1]
}

// Names returns the pass names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}

// AwaitReady waits for every pass to finish loading. The first load
// failure cancels the wait and is returned.
func (p *Pipeline) AwaitReady(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, pass := range p.passes {
		ready := pass.Ready()
		if ready == nil {
			continue
		}
		g.Go(func() error {
			if err := ready.Wait(gctx); err != nil {
				return fmt.Errorf("pipeline: pass %q: %w", pass.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// SetSize forwards a resize to every pass in order.
func (p *Pipeline) SetSize(width, height int) {
	for _, pass := range p.passes {
		pass.SetSize(width, height)
	}
}

// Execute runs every pass in order. The caller provides the quad scope.
func (p *Pipeline) Execute() {
	for _, pass := range p.passes {
		pass.Execute()
	}
}

// Destroy releases the resources of passes that hold any. Every pass's
// Ready settles before its Destroy runs, so a load still in progress when
// startup fails finishes before its resources are released.
func (p *Pipeline) Destroy() {
	for _, pass := range p.passes {
		if ready := pass.Ready(); ready != nil {
			<-ready.Done()
		}
		if d, ok := pass.(interface{ Destroy() }); ok {
			d.Destroy()
		}
	}
}
