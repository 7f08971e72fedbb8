// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sync"
	"time"
)

// Limiter decides whether a request for key may go out now.
type Limiter interface {
	Allow(key string) bool
}

// SlidingWindowLimiter admits at most limit calls per key within any window
// ending at the current instant. Rejected calls are not recorded.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	hits   map[string][]time.Time

	lastSweep time.Time
}

// NewSlidingWindowLimiter returns a limiter using the wall clock.
func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// Allow implements [Limiter].
func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	hits := l.hits[key]
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	hits = hits[i:]

	if len(hits) >= l.limit {
		l.hits[key] = hits
		return false
	}

	l.hits[key] = append(hits, now)
	return true
}

// sweep forgets keys with no call after cutoff. Every /projects/{id} path is
// its own key, so idle ones would otherwise pile up.
func (l *SlidingWindowLimiter) sweep(cutoff time.Time) {
	for key, hits := range l.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(l.hits, key)
		}
	}
}
