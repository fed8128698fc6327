package repository

import (
	"context"
	"time"
)

// CounterStore counts events per key in fixed time windows.
type CounterStore interface {
	// Increment adds one to key's counter and returns the count for the
	// current window. The window starts with the first increment.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
