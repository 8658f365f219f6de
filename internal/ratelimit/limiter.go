// Package ratelimit throttles outbound requests per host so a full-term
// fetch does not hammer the schedule server.
package ratelimit

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter is the interface the transport depends on.
type RateLimiter interface {
	// Wait blocks until a request for the given URL may proceed, or the
	// context is cancelled.
	Wait(ctx context.Context, urlStr string) error
}

// HostLimiter applies token-bucket rate limiting independently per host.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	perHost  rate.Limit
	burst    int
}

// NewHostLimiter creates a limiter with the given per-host rate. Non-positive
// arguments fall back to defaults.
func NewHostLimiter(requestsPerSecond float64, burst int) *HostLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5.0
	}
	if burst <= 0 {
		burst = 10
	}

	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Wait blocks until the request for the given URL can proceed.
func (hl *HostLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	host := extractHost(urlStr)
	if host == "" {
		// Invalid URL, let it proceed; it will fail in the transport.
		return nil
	}
	return hl.limiter(host).Wait(ctx)
}

// Allow reports whether a request can proceed immediately without
// blocking. Not part of RateLimiter; the transport only ever waits.
func (hl *HostLimiter) Allow(urlStr string) bool {
	host := extractHost(urlStr)
	if host == "" {
		return true
	}
	return hl.limiter(host).Allow()
}

func (hl *HostLimiter) limiter(host string) *rate.Limiter {
	hl.mu.RLock()
	lim, exists := hl.limiters[host]
	hl.mu.RUnlock()
	if exists {
		return lim
	}

	hl.mu.Lock()
	defer hl.mu.Unlock()

	// Double-check after acquiring the write lock.
	if lim, exists := hl.limiters[host]; exists {
		return lim
	}

	lim = rate.NewLimiter(hl.perHost, hl.burst)
	hl.limiters[host] = lim
	return lim
}

func extractHost(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
