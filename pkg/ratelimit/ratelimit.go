// Package ratelimit keeps one token bucket per client key.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter manages rate limiters for individual clients. It satisfies
// echo's middleware.RateLimiterStore.
type KeyedLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// New creates a limiter allowing perSecond events per key with burst.
func New(perSecond float64, burst int) *KeyedLimiter {
	if burst < 1 {
		burst = 1
	}
	return &KeyedLimiter{
		limiters: make(map[string]*entry),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether key may perform one more event now.
func (l *KeyedLimiter) Allow(key string) (bool, error) {
	return l.get(key).Allow(), nil
}

func (l *KeyedLimiter) get(key string) *rate.Limiter {
	now := l.now()

	l.mu.RLock()
	e, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		e.lastSeen = now
		l.mu.Unlock()
		return e.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double check to prevent race condition
	if e, ok = l.limiters[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	e = &entry{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.limiters[key] = e
	return e.limiter
}

// Sweep drops limiters idle for longer than idle and returns how many were
// removed.
func (l *KeyedLimiter) Sweep(idle time.Duration) int {
	cutoff := l.now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}
