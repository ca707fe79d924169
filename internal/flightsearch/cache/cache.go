package cache

import (
	"sync"
	"time"
)

// purgeInterval bounds how often Set sweeps expired entries.
const purgeInterval = time.Minute

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache is a TTL map. Values pass through clone on the way in and out so
// stored results cannot be mutated by callers.
type Cache[T any] struct {
	mu        sync.RWMutex
	entries   map[string]entry[T]
	nextPurge time.Time
	clone     func(T) T
	now       func() time.Time
}

func New[T any](clone func(T) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		now:     time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (c *Cache[T]) WithClock(now func() time.Time) *Cache[T] {
	c.now = now
	return c
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	if now := c.now(); !now.Before(entry.expiry) {
		c.deleteExpired(key, now)
		var zero T
		return zero, false
	}
	return c.cloneValue(entry.value), true
}

func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if !now.Before(c.nextPurge) {
		c.purgeLocked(now)
		c.nextPurge = now.Add(purgeInterval)
	}
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: now.Add(ttl)}
}

func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Purge drops expired entries and reports how many remain.
func (c *Cache[T]) Purge() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeLocked(now)
	return len(c.entries)
}

func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// deleteExpired removes key only if the stored entry is still expired, so a
// value Set since the caller's read survives.
func (c *Cache[T]) deleteExpired(key string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && !now.Before(e.expiry) {
		delete(c.entries, key)
	}
}

func (c *Cache[T]) purgeLocked(now time.Time) {
	for key, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
