package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache is a TTL map. Get extends an entry's lifetime when the cache was
// created with sliding expiry.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
	sliding bool
	now     func() time.Time
}

func New[T any](clone func(T) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
		now:     time.Now,
	}
}

// NewSliding returns a cache whose Get renews the entry for ttl.
func NewSliding[T any](clone func(T) T) *Cache[T] {
	c := New(clone)
	c.sliding = true
	return c
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.get(key, 0)
}

// Touch is Get that renews the entry for ttl on a sliding cache.
func (c *Cache[T]) Touch(key string, ttl time.Duration) (T, bool) {
	return c.get(key, ttl)
}

func (c *Cache[T]) get(key string, ttl time.Duration) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	now := c.now()
	if now.After(e.expiry) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		var zero T
		return zero, false
	}
	if c.sliding && ttl > 0 {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok {
			current.expiry = now.Add(ttl)
			c.entries[key] = current
		}
		c.mu.Unlock()
	}
	return c.cloneValue(e.value), true
}

func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: c.now().Add(ttl)}
	c.mu.Unlock()
}

func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Sweep removes expired entries and returns how many are left.
func (c *Cache[T]) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, key)
		}
	}
	return len(c.entries)
}

func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
