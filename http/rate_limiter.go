package http

import (
	"context"
	"log/slog"
	"time"

	"property-simulator/repository"
)

// RateLimiter allows capacity requests per client in each window. Counting
// is delegated to a CounterStore so replicas can share limits through Redis.
type RateLimiter struct {
	store    repository.CounterStore
	capacity int
	window   time.Duration
	logger   *slog.Logger
}

func NewRateLimiter(
	store repository.CounterStore,
	capacity int,
	window time.Duration,
	logger *slog.Logger,
) *RateLimiter {
	return &RateLimiter{
		store:    store,
		capacity: capacity,
		window:   window,
		logger:   logger,
	}
}

// Allow reports whether the client may proceed. A failing store lets the
// request through.
func (r *RateLimiter) Allow(ctx context.Context, client string) bool {
	n, err := r.store.Increment(ctx, "ratelimit:"+client, r.window)
	if err != nil {
		r.logger.Warn("rate limit store unavailable", "client", client, "error", err)
		return true
	}
	return n <= int64(r.capacity)
}
