package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps counters in process memory. State is lost on restart
// and is not shared between instances.
type MemoryStore struct {
	mu       sync.Mutex
	records  map[string]Record
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a MemoryStore. When cleanupInterval is positive a
// background goroutine drops records idle for longer than maxIdle; call Stop
// on shutdown.
func NewMemoryStore(cleanupInterval, maxIdle time.Duration) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]Record),
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.cleanup(cleanupInterval, maxIdle)
	}
	return s
}

// Take implements Store.
func (s *MemoryStore) Take(_ context.Context, key string, now time.Time, window time.Duration, max int) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, allowed := take(s.records[key], now, window, max)
	s.records[key] = rec
	return rec, allowed, nil
}

// Sweep removes records whose window started before now-maxIdle and returns
// how many were removed.
func (s *MemoryStore) Sweep(now time.Time, maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, rec := range s.records {
		if now.Sub(rec.WindowStart) > maxIdle {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) cleanup(interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.Sweep(now, maxIdle)
		}
	}
}
