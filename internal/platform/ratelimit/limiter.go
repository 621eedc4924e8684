// Package ratelimit paces outbound provider requests so the service stays
// inside third-party API quotas.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultRatePerMinute = 30

// Limiter hands out one request slot at a time per provider. Waiting callers
// acquire slots through a reservation, so two goroutines can never consume
// the same slot, and a cancelled context releases the caller immediately.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rates    map[string]int
	fallback int
}

// NewLimiter builds a limiter with a default requests-per-minute budget and
// optional per-provider overrides.
func NewLimiter(ratePerMinute int, overrides map[string]int) *Limiter {
	if ratePerMinute < 1 {
		ratePerMinute = defaultRatePerMinute
	}

	rates := make(map[string]int, len(overrides))
	for provider, rpm := range overrides {
		if rpm > 0 {
			rates[provider] = rpm
		}
	}

	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rates:    rates,
		fallback: ratePerMinute,
	}
}

// Wait blocks until the provider has a free request slot or ctx is done.
func (l *Limiter) Wait(ctx context.Context, provider string) error {
	return l.limiterFor(provider).Wait(ctx)
}

// Allow reports whether a slot is immediately available, consuming it if so.
func (l *Limiter) Allow(provider string) bool {
	return l.limiterFor(provider).Allow()
}

func (l *Limiter) limiterFor(provider string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[provider]; ok {
		return lim
	}

	rpm := l.fallback
	if override, ok := l.rates[provider]; ok {
		rpm = override
	}

	// Burst of one keeps requests evenly spaced instead of allowing an
	// initial burst that could still trip the provider.
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	l.limiters[provider] = lim
	return lim
}
