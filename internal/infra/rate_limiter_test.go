package infra

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterRemaining(t *testing.T) {
	r := NewRateLimiter(3, time.Second)

	if got := r.Remaining(); got != 3 {
		t.Errorf("Remaining() = %d, want 3", got)
	}

	if err := r.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if got := r.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}

	r.Reset()
	if got := r.Remaining(); got != 3 {
		t.Errorf("Remaining() = %d after reset, want 3", got)
	}
}

func TestRateLimiterBlocksAtCapacity(t *testing.T) {
	window := 100 * time.Millisecond
	r := NewRateLimiter(2, window)

	ctx := context.Background()
	if err := r.Acquire(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Acquire(ctx); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	if err := r.Acquire(ctx); err != nil {
		t.Fatal(err)
	}
	elapsed := time.Since(start)

	if elapsed < window/2 {
		t.Errorf("third acquire returned after %v, expected a wait near %v", elapsed, window)
	}
}

func TestRateLimiterContextCancel(t *testing.T) {
	r := NewRateLimiter(1, time.Minute)
	if err := r.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := r.Acquire(ctx); err == nil {
		t.Error("expected context error when window is saturated")
	}
}
