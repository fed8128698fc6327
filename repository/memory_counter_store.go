package repository

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 30 * time.Minute

type counterWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore is a process-local CounterStore. Expired windows are
// dropped by a background loop until Stop is called.
type MemoryCounterStore struct {
	mu          sync.Mutex
	counters    map[string]*counterWindow
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewMemoryCounterStore() *MemoryCounterStore {
	s := &MemoryCounterStore{
		counters:    make(map[string]*counterWindow),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryCounterStore) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, exists := s.counters[key]
	if !exists || !now.Before(c.resetAt) {
		c = &counterWindow{resetAt: now.Add(window)}
		s.counters[key] = c
	}

	c.count++
	return c.count, nil
}

func (s *MemoryCounterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}

func (s *MemoryCounterStore) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryCounterStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, c := range s.counters {
		if !now.Before(c.resetAt) {
			delete(s.counters, key)
		}
	}
}

func (s *MemoryCounterStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCleanup) })
}
