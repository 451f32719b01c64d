package handler

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/snapshot"
	"github.com/binderapp/binder/internal/storage"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// testCards is the three-card set the handler tests run against
func testCards() []domain.Card {
	return []domain.Card{
		{ID: "c1", Name: "Ancient Guardian", SetCode: "tst", CollectorNumber: "1", Rarity: domain.RarityRare, HasNonFoil: true, HasFoil: true, PriceNonFoil: price("1.50"), PriceFoil: price("3.00")},
		{ID: "c2", Name: "Bright Mare", SetCode: "tst", CollectorNumber: "2", Rarity: domain.RarityCommon, HasNonFoil: true, PriceNonFoil: price("0.25")},
		{ID: "c3", Name: "Cinder Wolf", SetCode: "tst", CollectorNumber: "10", Rarity: domain.RarityMythic, HasFoil: true, PriceFoil: price("12.00")},
	}
}

// stubProvider serves a fixed card list and counts fetches
type stubProvider struct {
	mu    sync.Mutex
	cards []domain.Card
	err   error
	calls int
}

func (p *stubProvider) SearchSet(_ context.Context, _ string, _ domain.CatalogVariant) ([]domain.Card, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return nil, 0, p.err
	}
	return p.cards, 1, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// testEnv wires real services over one in-memory store, the way the server
// wires them in production
type testEnv struct {
	store      *storage.Memory
	provider   *stubProvider
	collection collection.Service
	catalog    catalog.Service
	prefs      prefs.Service
	snapshots  snapshot.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemory()
	provider := &stubProvider{cards: testCards()}

	env := &testEnv{
		store:      store,
		provider:   provider,
		collection: collection.NewService(store, nil),
		catalog:    catalog.NewService(provider, nil, catalog.DefaultCacheConfig()),
		prefs:      prefs.NewService(store),
		snapshots:  snapshot.NewService(store, nil),
	}
	require.NoError(t, env.collection.Load(context.Background()))
	return env
}
