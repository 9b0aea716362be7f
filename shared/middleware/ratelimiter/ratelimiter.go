// Package ratelimiter provides token bucket limiters keyed by caller identity.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// bucket implements a token bucket rate limiter
type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	key        string           // Reference to key for cleanup
	parent     *UserRateLimiter // Reference to parent for cleanup
}

// UserRateLimiter keeps one in-memory bucket per key.
// Buckets idle for longer than expirationTime are dropped.
type UserRateLimiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

// New creates a limiter refilling rate tokens per second up to capacity.
func New(rate float64, capacity float64, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

// cleanup removes a specific bucket
func (url *UserRateLimiter) cleanup(key string) {
	url.mu.Lock()
	delete(url.buckets, key)
	url.mu.Unlock()
}

// resetTimer resets the expiration timer for a bucket
func (b *bucket) resetTimer() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.key)
	})
}

// getBucket gets or creates the bucket for a key
func (url *UserRateLimiter) getBucket(key string) *bucket {
	// First try read-only lookup
	url.mu.RLock()
	b, exists := url.buckets[key]
	url.mu.RUnlock()

	if exists {
		b.resetTimer()
		return b
	}

	url.mu.Lock()
	defer url.mu.Unlock()

	// Double-check after acquiring write lock
	b, exists = url.buckets[key]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     url.capacity,
		capacity:   url.capacity,
		rate:       url.rate,
		lastRefill: time.Now(),
		key:        key,
		parent:     url,
	}
	url.buckets[key] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	// Refill tokens based on elapsed time
	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}

	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}

	return false
}

// Allow checks if a request should be allowed for a given key
func (url *UserRateLimiter) Allow(_ context.Context, key string) bool {
	return url.getBucket(key).allow()
}

// Stop cleans up all timers
func (url *UserRateLimiter) Stop() {
	url.mu.Lock()
	defer url.mu.Unlock()

	for _, b := range url.buckets {
		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
		}
		b.mu.Unlock()
	}
}
