package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/storage"
)

func TestService_Get_DefaultsWhenUnset(t *testing.T) {
	svc := NewService(storage.NewMemory())

	prefs, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, prefs.Language)
	assert.Equal(t, domain.VariantCards, prefs.CatalogVariant)
}

func TestService_SetLanguage(t *testing.T) {
	store := storage.NewMemory()
	svc := NewService(store)
	ctx := context.Background()

	lang, err := svc.SetLanguage(ctx, "de")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageGerman, lang)

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageGerman, prefs.Language)
	assert.Equal(t, domain.VariantCards, prefs.CatalogVariant)
}

func TestService_SetLanguage_RejectsUnknown(t *testing.T) {
	store := storage.NewMemory()
	svc := NewService(store)

	_, err := svc.SetLanguage(context.Background(), "tlh")

	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
	assert.Equal(t, 0, store.Len())
}

func TestService_SetCatalogVariant(t *testing.T) {
	store := storage.NewMemory()
	svc := NewService(store)
	ctx := context.Background()

	variant, err := svc.SetCatalogVariant(ctx, "extras")
	require.NoError(t, err)
	assert.Equal(t, domain.VariantExtras, variant)

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantExtras, prefs.CatalogVariant)
	assert.Equal(t, domain.LanguageEnglish, prefs.Language)
}

func TestService_SetCatalogVariant_RejectsUnknown(t *testing.T) {
	store := storage.NewMemory()
	svc := NewService(store)

	_, err := svc.SetCatalogVariant(context.Background(), "everything")

	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
	assert.Equal(t, 0, store.Len())
}

func TestService_Get_CorruptSlotFallsBackToDefault(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyLanguage, []byte("??")))
	require.NoError(t, store.Set(ctx, KeyVariant, []byte("extras")))

	svc := NewService(store)
	prefs, err := svc.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLanguage, prefs.Language)
	assert.Equal(t, domain.VariantExtras, prefs.CatalogVariant)
}

func TestService_SetLanguage_StoreFailure(t *testing.T) {
	store := storage.NewMemory()
	store.FailWrites = errors.New("disk full")
	svc := NewService(store)

	_, err := svc.SetLanguage(context.Background(), "fr")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
