// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import "time"

// Clock delivers frame ticks.
type Clock interface {
	// Ticks returns the tick channel.
	Ticks() <-chan time.Time

	// Stop releases the clock. No ticks are delivered afterwards.
	Stop()
}

// TickerClock ticks at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock ticking fps times per second.
// Non-positive rates default to 60.
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Ticks returns the tick channel.
func (c *TickerClock) Ticks() <-chan time.Time { return c.ticker.C }

// Stop stops the ticker.
func (c *TickerClock) Stop() { c.ticker.Stop() }
