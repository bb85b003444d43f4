// Package pacing provides the inter-request pacing policy used when paging
// through the upstream search API. The pause between pages is a courtesy to
// the upstream rate limit, not a backoff: it is fixed, never adaptive, and
// injectable so tests run without real delays.
package pacing

import (
	"context"
	"time"
)

// DefaultPageInterval is the pause between upstream page requests.
const DefaultPageInterval = 400 * time.Millisecond

// Pacer pauses between consecutive upstream requests.
type Pacer interface {
	// Pause blocks for the policy's interval or until the context is
	// done, returning the context's error in that case.
	Pause(ctx context.Context) error
}

// Interval is a Pacer that waits a fixed duration.
type Interval struct {
	interval time.Duration
}

// NewInterval creates a fixed-interval pacer. A zero interval means no
// pause between pages; negative intervals fall back to the default.
func NewInterval(interval time.Duration) *Interval {
	if interval < 0 {
		interval = DefaultPageInterval
	}
	return &Interval{interval: interval}
}

// Default returns the standard inter-page pacer.
func Default() *Interval {
	return NewInterval(DefaultPageInterval)
}

// Pause implements Pacer.
func (p *Interval) Pause(ctx context.Context) error {
	if p.interval == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Nop is a Pacer that never waits. Use it in tests.
type Nop struct{}

// NewNop creates a no-op pacer.
func NewNop() *Nop {
	return &Nop{}
}

// Pause implements Pacer without waiting. It still honors an already
// cancelled context.
func (*Nop) Pause(ctx context.Context) error {
	return ctx.Err()
}

// Compile-time interface checks.
var (
	_ Pacer = (*Interval)(nil)
	_ Pacer = (*Nop)(nil)
)
