// Package cache provides a small in-process TTL cache used for read-mostly
// lookups such as the supervisor's operator list. Entries expire after a TTL
// injected at construction; Sweep drops expired entries and is called
// periodically by a background job.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a concurrency-safe map with per-entry expiry. The zero value is
// not usable; create instances with New.
type Cache[K comparable, V any] struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	entries map[K]entry[V]
}

// New creates a cache whose entries expire ttl after being set.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[K]entry[V]),
	}
}

// NewWithClock creates a cache with an injected clock for tests.
func NewWithClock[K comparable, V any](ttl time.Duration, now func() time.Time) *Cache[K, V] {
	c := New[K, V](ttl)
	c.now = now
	return c
}

// Get returns the cached value and whether it is present and fresh.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value, resetting its expiry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops a single entry.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *Cache[K, V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dropped := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
