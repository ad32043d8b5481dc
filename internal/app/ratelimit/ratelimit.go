// Package ratelimit provides a process-local fixed-window request counter.
// It is a coarse abuse guard, not a distributed limiter: counters live in
// memory and reset on restart. Callers depend only on the Check contract, so
// a shared backing store can replace this implementation without touching
// call sites.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Decision is the outcome of a single Check call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // only meaningful when !Allowed
}

type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Check counts one request against key within a fixed window. The first
// request after a window expires starts a fresh window; expired entries are
// dropped lazily on their next access.
func (l *Limiter) Check(key string, limit int, window time.Duration) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || !e.resetAt.After(now) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(window)}
		return Decision{Allowed: true, Remaining: limit - 1}
	}

	if e.count >= limit {
		return Decision{Allowed: false, Remaining: 0, RetryAfter: e.resetAt.Sub(now)}
	}

	e.count++
	return Decision{Allowed: true, Remaining: limit - e.count}
}
