package infra

import (
	"context"
	"sync"
	"time"
)

// RateLimiter implements a sliding-window rate limiter.
// Thread-safe and suitable for concurrent API calls.
type RateLimiter struct {
	mu       sync.Mutex
	maxCalls int
	period   time.Duration
	calls    []time.Time
}

// NewRateLimiter creates a new rate limiter allowing maxCalls per period.
func NewRateLimiter(maxCalls int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		maxCalls: maxCalls,
		period:   period,
	}
}

// Acquire blocks until the window allows another call, or the context is
// cancelled.
func (r *RateLimiter) Acquire(ctx context.Context) error {
	for {
		r.mu.Lock()
		now := time.Now()
		r.prune(now)

		if len(r.calls) < r.maxCalls {
			r.calls = append(r.calls, now)
			r.mu.Unlock()
			return nil
		}

		// Wait until the oldest call leaves the window.
		wait := r.calls[0].Add(r.period).Sub(now)
		r.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Remaining returns the number of calls left in the current window.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(time.Now())
	left := r.maxCalls - len(r.calls)
	if left < 0 {
		return 0
	}
	return left
}

// Reset clears the call history.
func (r *RateLimiter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = r.calls[:0]
}

// prune drops calls older than the window. Must be called with mu held.
func (r *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-r.period)
	i := 0
	for i < len(r.calls) && r.calls[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		r.calls = append(r.calls[:0], r.calls[i:]...)
	}
}
