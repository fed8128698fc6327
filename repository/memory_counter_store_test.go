package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(now *time.Time) *MemoryCounterStore {
	s := NewMemoryCounterStore()
	s.now = func() time.Time { return *now }
	return s
}

func TestMemoryCounterStore_CountsWithinWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)
	defer s.Stop()

	ctx := context.Background()
	for want := int64(1); want <= 3; want++ {
		n, err := s.Increment(ctx, "10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err := s.Increment(ctx, "10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryCounterStore_ResetsAfterWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)
	defer s.Stop()

	ctx := context.Background()
	_, _ = s.Increment(ctx, "k", time.Minute)
	_, _ = s.Increment(ctx, "k", time.Minute)

	now = now.Add(time.Minute)
	n, err := s.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryCounterStore_CleanupDropsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)
	defer s.Stop()

	ctx := context.Background()
	_, _ = s.Increment(ctx, "old", time.Minute)
	now = now.Add(30 * time.Second)
	_, _ = s.Increment(ctx, "fresh", time.Minute)

	now = now.Add(45 * time.Second)
	s.cleanup()

	assert.Equal(t, 1, s.Len())
}

func TestMemoryCounterStore_Concurrent(t *testing.T) {
	s := NewMemoryCounterStore()
	defer s.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Increment(context.Background(), "shared", time.Hour)
		}()
	}
	wg.Wait()

	n, err := s.Increment(context.Background(), "shared", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(51), n)
}

func TestMemoryCounterStore_StopTwice(t *testing.T) {
	s := NewMemoryCounterStore()
	s.Stop()
	assert.NotPanics(t, s.Stop)
}
