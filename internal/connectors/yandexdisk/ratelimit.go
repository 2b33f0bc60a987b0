package yandexdisk

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the proactive throttle for API calls (requests per second).
	DefaultRate = 5

	// DefaultBurst allows a short burst of listing pages.
	DefaultBurst = 2

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles API calls with a token bucket and honours
// Retry-After on 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	bucket  *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if wait := time.Until(retryAt); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// Observe records a Retry-After hint from a 429 response.
func (r *RateLimiter) Observe(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}

	seconds, err := strconv.Atoi(resp.Header.Get(HeaderRetryAfter))
	if err != nil || seconds <= 0 {
		seconds = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryAt = time.Now().Add(time.Duration(seconds) * time.Second)
}

// RetryAt returns when the API next accepts requests after a 429.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}
