// Package budget threads an optional step-count ceiling and context
// cancellation through the saturation loops in wordgraph and stephen.
//
// It has no effect when unconfigured, and on exceeding a configured step
// budget returns ErrExceeded while leaving the caller's state untouched so
// that a later Run can resume. The functional shape mirrors the functional-
// options pattern used throughout this module: a ctx field threaded through
// the walker, checked once per loop iteration.
package budget

import (
	"context"
	"errors"
)

// ErrExceeded is returned by Step once the configured step ceiling has been
// passed.
var ErrExceeded = errors.New("budget: step budget exceeded")

// Tracker enforces an optional step ceiling and observes context cancellation.
// A zero-value Tracker (via New with maxSteps<=0 and a nil context) never fails.
type Tracker struct {
	ctx   context.Context
	max   int // 0 = unlimited
	steps int
}

// New returns a Tracker bound to ctx (context.Background() if nil) with the
// given maximum number of Step calls permitted (0 or negative = unlimited).
func New(ctx context.Context, maxSteps int) *Tracker {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Tracker{ctx: ctx, max: maxSteps}
}

// Step records one unit of work and returns ctx.Err() if the context has
// been cancelled, or ErrExceeded if the step ceiling has been passed.
func (t *Tracker) Step() error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}

	if t.max > 0 && t.steps >= t.max {
		return ErrExceeded
	}
	t.steps++

	return nil
}

// Steps returns the number of successful Step calls so far.
func (t *Tracker) Steps() int {
	return t.steps
}
