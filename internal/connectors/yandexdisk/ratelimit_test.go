package yandexdisk

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Observe(t *testing.T) {
	t.Run("ignores success", func(t *testing.T) {
		r := NewRateLimiter(DefaultRate, DefaultBurst)
		r.Observe(&http.Response{StatusCode: http.StatusOK, Header: http.Header{}})
		r.Observe(nil)
		assert.True(t, r.RetryAt().IsZero())
	})

	t.Run("honours Retry-After", func(t *testing.T) {
		r := NewRateLimiter(DefaultRate, DefaultBurst)
		header := http.Header{}
		header.Set(HeaderRetryAfter, "30")

		r.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: header})

		assert.WithinDuration(t, time.Now().Add(30*time.Second), r.RetryAt(), 2*time.Second)
	})

	t.Run("defaults to one second", func(t *testing.T) {
		r := NewRateLimiter(DefaultRate, DefaultBurst)

		r.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})

		assert.WithinDuration(t, time.Now().Add(time.Second), r.RetryAt(), time.Second)
	})
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("passes immediately with tokens", func(t *testing.T) {
		r := NewRateLimiter(100, 1)
		assert.NoError(t, r.Wait(context.Background()))
	})

	t.Run("cancelled while backing off", func(t *testing.T) {
		r := NewRateLimiter(100, 1)
		header := http.Header{}
		header.Set(HeaderRetryAfter, "60")
		r.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: header})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
	})
}
