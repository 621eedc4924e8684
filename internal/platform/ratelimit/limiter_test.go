package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLimiter_FirstRequestPassesImmediately(t *testing.T) {
	t.Parallel()

	l := NewLimiter(30, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "trackergg"); err != nil {
		t.Fatalf("first request should not wait: %v", err)
	}
}

func TestLimiter_SecondRequestIsPaced(t *testing.T) {
	t.Parallel()

	// 60 rpm = one slot per second.
	l := NewLimiter(60, nil)

	if !l.Allow("trackergg") {
		t.Fatal("first slot should be free")
	}
	if l.Allow("trackergg") {
		t.Fatal("second slot should not be free immediately")
	}
}

func TestLimiter_WaitRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	// 1 rpm: after the first slot the next wait would be a minute.
	l := NewLimiter(1, nil)
	if err := l.Wait(context.Background(), "trackergg"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx, "trackergg")
	if err == nil {
		t.Fatal("expected wait to fail once context expires")
	}
	if !errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLimiter_ProvidersHaveIndependentBudgets(t *testing.T) {
	t.Parallel()

	l := NewLimiter(1, map[string]int{"fast": 6000})

	if !l.Allow("slow") {
		t.Fatal("slow provider first slot should be free")
	}
	if l.Allow("slow") {
		t.Fatal("slow provider should be exhausted")
	}
	if !l.Allow("fast") {
		t.Fatal("fast provider should be unaffected by slow provider usage")
	}
}

func TestNewLimiter_InvalidRateFallsBackToDefault(t *testing.T) {
	t.Parallel()

	l := NewLimiter(0, nil)
	if l.fallback != defaultRatePerMinute {
		t.Fatalf("fallback=%d want=%d", l.fallback, defaultRatePerMinute)
	}
}
