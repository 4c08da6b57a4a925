package personas

import (
	"context"
	"sync"
	"time"
)

// Cache is a time-boxed read-through cache over a Loader. Entries expire
// after TTL so persona edits show up without a process restart. Negative
// lookups are cached too — a missing persona stays missing for one TTL.
type Cache struct {
	inner Loader
	ttl   time.Duration
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	persona *Persona // nil for a cached miss
	expires time.Time
}

// NewCache wraps a Loader with a TTL cache.
func NewCache(inner Loader, ttl time.Duration) *Cache {
	return &Cache{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns a cached persona when fresh, otherwise delegates to the
// inner loader. Loader errors are not cached.
func (c *Cache) Load(ctx context.Context, id string) (*Persona, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expires) {
		if entry.persona == nil {
			return nil, nil
		}
		cp := *entry.persona
		return &cp, nil
	}

	p, err := c.inner.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[id] = cacheEntry{persona: p, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()

	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
