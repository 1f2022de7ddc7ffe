package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is the single-process fallback used when redis is
// disabled. Same sliding-window semantics, state lost on restart.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	windows := []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}

	// Prune against the widest window so the slice stays bounded.
	l.entries[key] = prune(l.entries[key], now.Add(-24*time.Hour))

	for _, window := range windows {
		if window.limit <= 0 {
			continue
		}
		if countSince(l.entries[key], now.Add(-window.duration)) >= window.limit {
			return false, nil
		}
	}

	l.entries[key] = append(l.entries[key], now)
	return true, nil
}

func (l *MemoryRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return int64(countSince(l.entries[key], time.Now().Add(-window))), nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
	return nil
}

func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

func countSince(stamps []time.Time, cutoff time.Time) int {
	n := 0
	for _, ts := range stamps {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}
