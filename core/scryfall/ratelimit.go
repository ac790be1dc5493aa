package scryfall

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between calls. Scryfall asks for
// 50-100ms between requests, so bulk operations gate every lookup through one
// of these.
type RateLimiter struct {
	mu          sync.Mutex
	minInterval time.Duration
	last        time.Time
}

// NewRateLimiter creates a limiter with the given minimum interval.
func NewRateLimiter(minInterval time.Duration) *RateLimiter {
	return &RateLimiter{minInterval: minInterval}
}

// Wait blocks until at least the minimum interval has passed since the
// previous call. The first call never blocks.
func (r *RateLimiter) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.last.IsZero() {
		if elapsed := time.Since(r.last); elapsed < r.minInterval {
			time.Sleep(r.minInterval - elapsed)
		}
	}
	r.last = time.Now()
}
