package http

import (
	"sync"
	"time"
)

// Buckets idle for idleWindows refill periods are forgotten by the sweeper.
const (
	idleWindows   = 60
	sweepInterval = 30 * time.Minute
)

type window struct {
	used    int
	started time.Time
}

// RateLimiter grants each client capacity requests per fixed window of
// length period. A rejected caller learns how long until its window resets.
type RateLimiter struct {
	capacity int
	period   time.Duration
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a background sweeper; call Stop to release it.
func NewRateLimiter(capacity int, period time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, period, time.Now)
	go rl.sweepLoop(sweepInterval)
	return rl
}

func newRateLimiter(capacity int, period time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		capacity: capacity,
		period:   period,
		now:      now,
		windows:  make(map[string]*window),
		done:     make(chan struct{}),
	}
}

// Allow records a request from client. When the window is exhausted it
// returns false and the time left until the window resets.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[client]
	if !ok || now.Sub(w.started) >= r.period {
		w = &window{started: now}
		r.windows[client] = w
	}

	if w.used >= r.capacity {
		return false, w.started.Add(r.period).Sub(now)
	}
	w.used++
	return true, 0
}

func (r *RateLimiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idleWindows * r.period)
	for client, w := range r.windows {
		if w.started.Before(cutoff) {
			delete(r.windows, client)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}
