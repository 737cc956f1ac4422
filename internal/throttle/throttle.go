// Package throttle enforces a minimum interval between operations.
package throttle

import (
	"sync"
	"time"
)

// Throttle spaces operations at least interval apart. A zero interval or a
// nil Throttle never delays.
type Throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

// New returns a throttle for interval.
func New(interval time.Duration) *Throttle {
	if interval < 0 {
		interval = 0
	}
	return &Throttle{interval: interval, now: time.Now}
}

// Interval returns the configured spacing.
func (t *Throttle) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.interval
}

// Wait blocks until the next slot opens and claims it.
func (t *Throttle) Wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		wait := t.next.Sub(t.now())
		if wait <= 0 {
			t.next = t.now().Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		time.Sleep(wait)
	}
}

// Allow claims the next slot when it is open and reports whether it did.
// It never blocks, so an update loop can drop events that arrive too fast.
func (t *Throttle) Allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
