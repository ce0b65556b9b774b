// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"context"
	"fmt"
	"sync"
)

// Ready is a one-shot readiness signal. It resolves exactly once, either
// successfully (nil error) or with a load failure.
//
// Ready is safe for concurrent use.
type Ready struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewReady returns an unresolved signal.
func NewReady() *Ready {
	return &Ready{done: make(chan struct{})}
}

// Resolved returns a signal already resolved with err.
func Resolved(err error) *Ready {
	r := NewReady()
	r.Resolve(err)
	return r
}

// Load runs fn on a new goroutine and resolves the signal with its result.
// A panic in fn resolves the signal with an error.
func Load(fn func() error) *Ready {
	r := NewReady()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.Resolve(fmt.Errorf("pipeline: load panicked: %v", p))
			}
		}()
		r.Resolve(fn())
	}()
	return r
}

// Resolve settles the signal. Only the first call has an effect; it
// reports whether this call resolved the signal.
func (r *Ready) Resolve(err error) bool {
	resolved := false
	r.once.Do(func() {
		r.err = err
		close(r.done)
		resolved = true
	})
	return resolved
}

// Done is closed when the signal resolves.
func (r *Ready) Done() <-chan struct{} {
	return r.done
}

// Err returns the load error once resolved, nil before.
func (r *Ready) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Wait blocks until the signal resolves or ctx is done.
func (r *Ready) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
