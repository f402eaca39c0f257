package identity

import (
	"sync"
	"time"
)

// permissionCache guarda a lista de permissões por email do sujeito por
// uma janela curta. É de propriedade do Resolver (nada de estado de
// processo) e seguro para requests concorrentes.
type permissionCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

type cacheEntry struct {
	permissions []string
	storedAt    time.Time
}

func newPermissionCache(capacity int, ttl time.Duration, now func() time.Time) *permissionCache {
	if capacity <= 0 {
		capacity = 100
	}
	if now == nil {
		now = time.Now
	}
	return &permissionCache{
		entries:  make(map[string]cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      now,
	}
}

func (c *permissionCache) Get(email string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[email]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, email)
		return nil, false
	}
	return entry.permissions, true
}

func (c *permissionCache) Set(email string, permissions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[email]; !ok && len(c.entries) >= c.capacity {
		c.evictLocked()
	}
	c.entries[email] = cacheEntry{
		permissions: permissions,
		storedAt:    c.now(),
	}
}

// evictLocked descarta primeiro as entradas vencidas; se nenhuma venceu,
// remove a mais antiga.
func (c *permissionCache) evictLocked() {
	now := c.now()
	var oldestKey string
	var oldestAt time.Time
	removed := false

	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed = true
			continue
		}
		if oldestKey == "" || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
		}
	}

	if !removed && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func (c *permissionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
