// Package ratelimit implements a per-client fixed-window request throttle.
//
// A Limiter owns its counter Store. The memory store keeps counters in the
// process; the redis store shares them between instances.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Record is the counter state of one client inside the current window.
type Record struct {
	Count       int
	WindowStart time.Time
}

// Result is the outcome of a single Allow call.
type Result struct {
	Allowed   bool
	Count     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long the caller should wait before the window resets.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if d := r.ResetAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Store performs the window check and increment for one key as a single
// atomic step. Implementations must reset the record when now is more than
// window past its start, reject without incrementing when the count already
// reached max, and increment otherwise.
type Store interface {
	Take(ctx context.Context, key string, now time.Time, window time.Duration, max int) (Record, bool, error)
}

// Limiter allows at most Max requests per Window for each client key.
type Limiter struct {
	store  Store
	window time.Duration
	max    int
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now. Used by tests to simulate elapsed time.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter. window and max must be positive.
func New(store Store, window time.Duration, max int, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("ratelimit: store is required")
	}
	if window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be > 0 (got %s)", window)
	}
	if max <= 0 {
		return nil, fmt.Errorf("ratelimit: max must be > 0 (got %d)", max)
	}

	l := &Limiter{store: store, window: window, max: max, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow records one request for key and reports whether it may proceed.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	rec, allowed, err := l.store.Take(ctx, key, l.now(), l.window, l.max)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: take %q: %w", key, err)
	}

	remaining := l.max - rec.Count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   allowed,
		Count:     rec.Count,
		Remaining: remaining,
		ResetAt:   rec.WindowStart.Add(l.window),
	}, nil
}

// Now returns the limiter clock reading.
func (l *Limiter) Now() time.Time { return l.now() }

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Max returns the configured request cap per window.
func (l *Limiter) Max() int { return l.max }

// take applies the fixed-window rule to rec. Shared by the stores that can
// run it under their own lock.
func take(rec Record, now time.Time, window time.Duration, max int) (Record, bool) {
	if rec.WindowStart.IsZero() || now.Sub(rec.WindowStart) > window {
		rec = Record{Count: 0, WindowStart: now}
	}
	if rec.Count >= max {
		return rec, false
	}
	rec.Count++
	return rec, true
}
