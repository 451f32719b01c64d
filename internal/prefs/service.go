package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/storage"
)

// Service reads and writes the collector preferences
type Service interface {
	// Get returns the current preferences, with defaults where unset
	Get(ctx context.Context) (domain.Preferences, error)
	// SetLanguage validates and persists the display language
	SetLanguage(ctx context.Context, value string) (domain.Language, error)
	// SetCatalogVariant validates and persists the catalog variant
	SetCatalogVariant(ctx context.Context, value string) (domain.CatalogVariant, error)
}

type service struct {
	store storage.KV
}

// NewService creates a preferences service over store
func NewService(store storage.KV) Service {
	return &service{store: store}
}

func (s *service) Get(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.Preferences{
		Language:       domain.DefaultLanguage,
		CatalogVariant: domain.DefaultCatalogVariant,
	}

	lang, err := s.readSlot(ctx, KeyLanguage)
	if err != nil {
		return domain.Preferences{}, err
	}
	if lang != "" {
		parsed, err := domain.ParseLanguage(lang)
		if err != nil {
			// A bad stored value falls back to the default instead of wedging reads
			logger.FromContext(ctx).Warn(LogMsgCorruptSlot, "key", KeyLanguage, "value", lang)
		} else {
			prefs.Language = parsed
		}
	}

	variant, err := s.readSlot(ctx, KeyVariant)
	if err != nil {
		return domain.Preferences{}, err
	}
	if variant != "" {
		parsed, err := domain.ParseCatalogVariant(variant)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgCorruptSlot, "key", KeyVariant, "value", variant)
		} else {
			prefs.CatalogVariant = parsed
		}
	}

	return prefs, nil
}

func (s *service) SetLanguage(ctx context.Context, value string) (domain.Language, error) {
	lang, err := domain.ParseLanguage(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, value)
	}

	if err := s.store.Set(ctx, KeyLanguage, []byte(lang)); err != nil {
		return "", fmt.Errorf("failed to store language preference: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgLanguageSet, "language", lang)
	return lang, nil
}

func (s *service) SetCatalogVariant(ctx context.Context, value string) (domain.CatalogVariant, error) {
	variant, err := domain.ParseCatalogVariant(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, value)
	}

	if err := s.store.Set(ctx, KeyVariant, []byte(variant)); err != nil {
		return "", fmt.Errorf("failed to store variant preference: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgVariantSet, "variant", variant)
	return variant, nil
}

func (s *service) readSlot(ctx context.Context, key string) (string, error) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return string(value), nil
}
