package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter manages per-host rate limits for outbound probes.
// Hosts without an explicit limit are admitted immediately, so by default
// only the worker pool bounds how many requests are in flight.
type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
}

// New creates a Limiter with no per-host limits configured.
func New() *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
	}
}

// SetLimit installs a request-per-second limit for the given host,
// replacing any previous limit.
func (l *Limiter) SetLimit(host string, limit rate.Limit, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limiters[host] = rate.NewLimiter(limit, burst)
}

// Wait blocks until the limiter permits a request to the given host.
// It returns an error if the context is canceled before the request
// can proceed. Hosts with no configured limit never block.
func (l *Limiter) Wait(ctx context.Context, host string) error {
	l.mu.RLock()
	limiter, exists := l.limiters[host]
	l.mu.RUnlock()

	if !exists {
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether a request to the given host may happen now
func (l *Limiter) Allow(host string) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[host]
	l.mu.RUnlock()

	if !exists {
		return true
	}

	return limiter.Allow()
}
