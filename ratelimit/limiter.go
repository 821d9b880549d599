package ratelimit

import (
	"sync"
	"time"
)

// Cooldown is how long outbound calls stay suppressed after a 429.
const Cooldown = 60 * time.Second

// Limiter tracks a single cooldown window triggered by throttling responses.
// The window clears by time comparison alone; there is no explicit reset.
// Shared between the foreground path and the background loop.
type Limiter struct {
	mu        sync.Mutex
	trippedAt time.Time
	now       func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{now: time.Now}
}

// NewLimiterAt builds a limiter with an injected clock.
func NewLimiterAt(now func() time.Time) *Limiter {
	return &Limiter{now: now}
}

// Trip records a rate-limit signal at the current time.
func (l *Limiter) Trip() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trippedAt = l.now()
}

// CoolingDown reports whether calls should still be suppressed. Callers must
// check this immediately before every search or lookup call and skip the
// call while it returns true.
func (l *Limiter) CoolingDown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.trippedAt.IsZero() {
		return false
	}
	return l.now().Sub(l.trippedAt) < Cooldown
}
