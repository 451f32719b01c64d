package catalog

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/binderapp/binder/internal/domain"
)

// CacheConfig sizes the per-set card list cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the standard cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: DefaultCacheSize,
		TTL:  DefaultCacheTTL,
	}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// setCache holds fetched set lists keyed by set and variant. Entries expire
// so price data cannot stay stale for a whole session.
type setCache struct {
	lru    *expirable.LRU[string, []domain.Card]
	hits   atomic.Int64
	misses atomic.Int64
}

func newSetCache(cfg CacheConfig) *setCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &setCache{
		lru: expirable.NewLRU[string, []domain.Card](cfg.Size, nil, cfg.TTL),
	}
}

func cacheKey(setCode string, variant domain.CatalogVariant) string {
	return setCode + ":" + string(variant)
}

// Get returns the cached list for a set and variant. The returned slice is
// shared; callers must treat it as read-only.
func (c *setCache) Get(setCode string, variant domain.CatalogVariant) ([]domain.Card, bool) {
	cards, found := c.lru.Get(cacheKey(setCode, variant))
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return cards, true
}

// peek checks for an entry without recording cache statistics. Used for the
// double-check after acquiring the fetch lock.
func (c *setCache) peek(setCode string, variant domain.CatalogVariant) ([]domain.Card, bool) {
	return c.lru.Peek(cacheKey(setCode, variant))
}

func (c *setCache) Set(setCode string, variant domain.CatalogVariant, cards []domain.Card) {
	c.lru.Add(cacheKey(setCode, variant), cards)
}

func (c *setCache) Invalidate(setCode string, variant domain.CatalogVariant) {
	c.lru.Remove(cacheKey(setCode, variant))
}

func (c *setCache) Clear() {
	c.lru.Purge()
}

func (c *setCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
