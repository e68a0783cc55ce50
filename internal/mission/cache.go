package mission

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/journey-app/journey/internal/domain"
)

// cachedCatalog wraps the catalog with version metadata for cache invalidation
type cachedCatalog struct {
	Version  string
	Missions []domain.Mission
}

// catalogCache keeps the active mission catalog in memory for a short TTL
type catalogCache struct {
	lru *expirable.LRU[string, *cachedCatalog]
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedCatalog](1, nil, ttl),
	}
}

// Get returns a copy of the cached catalog. Entries from an older schema are dropped.
func (c *catalogCache) Get() ([]domain.Mission, bool) {
	entry, found := c.lru.Get(catalogCacheKey)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(catalogCacheKey)
		return nil, false
	}
	return append([]domain.Mission(nil), entry.Missions...), true
}

func (c *catalogCache) Set(missions []domain.Mission) {
	c.lru.Add(catalogCacheKey, &cachedCatalog{
		Version:  CacheSchemaVersion,
		Missions: append([]domain.Mission(nil), missions...),
	})
}
