package ratelimit

import (
	"sync"
	"time"
)

// Result reports the outcome of a single limiter check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window request counter keyed by opaque strings.
// Windows reset lazily on access; a rejected request does not consume a
// slot. The accepted imprecision of fixed windows (a client can burst up
// to twice the limit across a window boundary) is a deliberate trade-off
// for O(1) memory and O(1) checks.
type Limiter struct {
	mu           sync.Mutex
	entries      map[string]*entry
	timeProvider func() time.Time
	done         chan struct{}
	stopOnce     sync.Once
}

type Opts struct {
	TimeProvider func() time.Time
}

func NewLimiter(opts *Opts) *Limiter {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}

	return &Limiter{
		entries:      make(map[string]*entry),
		timeProvider: timeProvider,
		done:         make(chan struct{}),
	}
}

// Check records a request under key and decides whether it may proceed.
// The read-modify-write is performed under the lock with no intervening
// I/O, so the per-window count never exceeds maxRequests.
func (l *Limiter) Check(key string, maxRequests int, window time.Duration) Result {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(window)}
		l.entries[key] = e
		return Result{Allowed: true, Remaining: maxRequests - 1, ResetAt: e.resetAt}
	}

	if e.count >= maxRequests {
		return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}
	}

	e.count++
	return Result{Allowed: true, Remaining: maxRequests - e.count, ResetAt: e.resetAt}
}

// Size returns the number of live entries, expired or not.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Sweep evicts entries whose window has already expired. An entry that
// survives one extra sweep cycle is harmless: it is treated as expired
// on next access regardless.
func (l *Limiter) Sweep() {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.entries {
		if !now.Before(e.resetAt) {
			delete(l.entries, key)
		}
	}
}

// StartSweeper runs Sweep every interval until Stop is called.
func (l *Limiter) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-l.done:
				return
			}
		}
	}()
}

func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}
