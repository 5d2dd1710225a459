// Package ratelimit throttles credential-guessing attempts against the
// login and registration forms. Counters are fixed-window per key (the
// submitted email) and transient; nothing here stores user data.
package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/finboard/finboard/internal/dependencies/clock"
)

// Limiter gates authentication attempts per key
type Limiter interface {
	// Allow records an attempt for key and reports whether it is within
	// the window's budget
	Allow(ctx context.Context, key string) (bool, error)
	// Reset forgets all attempts for key (called after a successful login)
	Reset(ctx context.Context, key string) error
}

// Config holds limiter settings
type Config struct {
	// MaxAttempts within one window before attempts are rejected
	MaxAttempts int
	// Window is the fixed window length
	Window time.Duration
}

// DefaultConfig returns sensible limiter defaults
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 10,
		Window:      time.Minute,
	}
}

// NormalizeKey canonicalizes a limiter key so "A@B.com" and "a@b.com "
// count against the same budget
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// MemoryLimiter is an in-process fixed-window limiter
type MemoryLimiter struct {
	cfg   Config
	clock clock.Clock

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	count int
}

// NewMemoryLimiter creates an in-memory limiter
func NewMemoryLimiter(cfg Config, clk clock.Clock) *MemoryLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultConfig()
	}
	return &MemoryLimiter{
		cfg:     cfg,
		clock:   clk,
		windows: make(map[string]*window),
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	key = NormalizeKey(key)
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.cfg.Window {
		l.windows[key] = &window{start: now, count: 1}
		return true, nil
	}

	w.count++
	return w.count <= l.cfg.MaxAttempts, nil
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, NormalizeKey(key))
	return nil
}
