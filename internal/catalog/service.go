package catalog

import (
	"context"
	"strings"

	"github.com/binderapp/binder/internal/concurrency"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/event"
	"github.com/binderapp/binder/internal/logger"
)

// Provider fetches the complete card list for one set
type Provider interface {
	SearchSet(ctx context.Context, setCode string, variant domain.CatalogVariant) ([]domain.Card, int, error)
}

// Service is the cached catalog lookup everything card-facing goes through
type Service interface {
	// Cards returns every printing of the set for the given variant
	Cards(ctx context.Context, setCode string, variant domain.CatalogVariant) ([]domain.Card, error)
	// Invalidate drops the cached list so the next read refetches
	Invalidate(ctx context.Context, setCode string, variant domain.CatalogVariant)
	// CacheStats reports cache hit behavior
	CacheStats() CacheStats
}

type service struct {
	provider Provider
	cache    *setCache
	locks    *concurrency.LockManager
	bus      event.Bus
}

// NewService creates a catalog service in front of provider
func NewService(provider Provider, bus event.Bus, cfg CacheConfig) Service {
	return &service{
		provider: provider,
		cache:    newSetCache(cfg),
		locks:    concurrency.NewLockManager(),
		bus:      bus,
	}
}

func (s *service) Cards(ctx context.Context, setCode string, variant domain.CatalogVariant) ([]domain.Card, error) {
	set := normalizeSetCode(setCode)
	if set == "" {
		return nil, domain.ErrSetRequired
	}

	if cards, ok := s.cache.Get(set, variant); ok {
		s.publishLoaded(ctx, set, variant, len(cards), 0, true)
		return cards, nil
	}

	// One fetch per (set, variant); concurrent readers wait for it
	lock := s.locks.GetLock(cacheKey(set, variant))
	lock.Lock()
	defer lock.Unlock()

	if cards, ok := s.cache.peek(set, variant); ok {
		s.publishLoaded(ctx, set, variant, len(cards), 0, true)
		return cards, nil
	}

	cards, pages, err := s.provider.SearchSet(ctx, set, variant)
	if err != nil {
		return nil, err
	}

	s.cache.Set(set, variant, cards)
	logger.FromContext(ctx).Info(LogMsgSetLoaded, "set", set, "variant", variant, "cards", len(cards), "pages", pages)
	s.publishLoaded(ctx, set, variant, len(cards), pages, false)

	return cards, nil
}

func (s *service) Invalidate(ctx context.Context, setCode string, variant domain.CatalogVariant) {
	set := normalizeSetCode(setCode)
	s.cache.Invalidate(set, variant)
	logger.FromContext(ctx).Info(LogMsgCacheInvalidated, "set", set, "variant", variant)
}

func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

func (s *service) publishLoaded(ctx context.Context, set string, variant domain.CatalogVariant, cards, pages int, cacheHit bool) {
	if s.bus == nil {
		return
	}
	evt := event.NewCatalogLoadedEvent(set, string(variant), cards, pages, cacheHit)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish catalog load event", "error", err)
	}
}

// normalizeSetCode canonicalizes a set code for cache keys and queries
func normalizeSetCode(setCode string) string {
	return strings.ToLower(strings.TrimSpace(setCode))
}
