package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value    string
	storedAt time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL expiry and a
// capacity bound. When full, the oldest-inserted entry is evicted first.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	order      []string // insertion order, oldest first
	ttl        time.Duration
	maxEntries int
}

// NewMemoryCache creates a memory cache. ttlSeconds <= 0 disables expiry;
// maxEntries <= 0 disables the capacity bound.
func NewMemoryCache(ttlSeconds, maxEntries int) *MemoryCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached value, treating expired entries as misses and
// deleting them on the way out.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores a value, evicting the oldest-inserted entries when the cache
// is at capacity. Overwriting a key keeps its original insertion slot.
func (c *MemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for c.maxEntries > 0 && len(c.entries) >= c.maxEntries && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = memoryEntry{value: value, storedAt: time.Now()}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	c.order = nil
}

// Entries snapshots all live entries, for export.
func (c *MemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.entries))
	now := time.Now()
	for key, entry := range c.entries {
		if c.ttl > 0 && now.Sub(entry.storedAt) > c.ttl {
			continue
		}
		out[key] = entry.value
	}
	return out
}

var _ TranslationCache = (*MemoryCache)(nil)
