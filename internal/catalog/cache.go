package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedItemEntry wraps an item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string       `json:"version"`
	Item     *domain.Item `json:"item"`
	CachedAt time.Time    `json:"cached_at"`
}

// itemCache provides an in-memory LRU cache for catalog item lookups with
// time-based expiration. Items are immutable, so the TTL only bounds memory
// staleness after out-of-band catalog management.
type itemCache struct {
	lru *expirable.LRU[int, *cachedItemEntry]
}

// newItemCache creates a new item cache with the specified size and TTL
func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[int, *cachedItemEntry](size, nil, ttl),
	}
}

// Get retrieves an item from the cache.
// Returns (nil, false) if not cached, expired, or schema version mismatch.
func (c *itemCache) Get(itemID int) (*domain.Item, bool) {
	entry, found := c.lru.Get(itemID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(itemID)
		return nil, false
	}
	return entry.Item, true
}

// Set stores an item in the cache with the current schema version
func (c *itemCache) Set(item *domain.Item) {
	c.lru.Add(item.ID, &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
}

// Len returns the number of cached items
func (c *itemCache) Len() int {
	return c.lru.Len()
}
