package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/event"
)

var stubCards = []domain.Card{
	{ID: "c1", Name: "Alpha", SetCode: "tst", CollectorNumber: "1", Rarity: domain.RarityCommon},
	{ID: "c2", Name: "Beta", SetCode: "tst", CollectorNumber: "2", Rarity: domain.RarityRare},
}

type stubProvider struct {
	mu    sync.Mutex
	calls int
	delay time.Duration
	cards []domain.Card
	errs  []error
}

func (p *stubProvider) SearchSet(ctx context.Context, setCode string, variant domain.CatalogVariant) ([]domain.Card, int, error) {
	p.mu.Lock()
	call := p.calls
	p.calls++
	p.mu.Unlock()

	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if call < len(p.errs) && p.errs[call] != nil {
		return nil, 0, p.errs[call]
	}
	return p.cards, 1, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestService_Cards_CachesFetchedSet(t *testing.T) {
	provider := &stubProvider{cards: stubCards}
	svc := NewService(provider, nil, DefaultCacheConfig())
	ctx := context.Background()

	first, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	assert.Equal(t, 1, provider.callCount())

	stats := svc.CacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestService_Cards_RequiresSetCode(t *testing.T) {
	svc := NewService(&stubProvider{}, nil, DefaultCacheConfig())

	_, err := svc.Cards(context.Background(), "   ", domain.VariantCards)
	assert.ErrorIs(t, err, domain.ErrSetRequired)
}

func TestService_Cards_NormalizesSetCode(t *testing.T) {
	provider := &stubProvider{cards: stubCards}
	svc := NewService(provider, nil, DefaultCacheConfig())
	ctx := context.Background()

	_, err := svc.Cards(ctx, "  TST ", domain.VariantCards)
	require.NoError(t, err)

	_, err = svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.callCount())
}

func TestService_Cards_VariantsCachedSeparately(t *testing.T) {
	provider := &stubProvider{cards: stubCards}
	svc := NewService(provider, nil, DefaultCacheConfig())
	ctx := context.Background()

	_, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)

	_, err = svc.Cards(ctx, "tst", domain.VariantExtras)
	require.NoError(t, err)

	assert.Equal(t, 2, provider.callCount())
}

func TestService_Cards_FailureNotCached(t *testing.T) {
	provider := &stubProvider{cards: stubCards, errs: []error{domain.ErrCatalogUnavailable}}
	svc := NewService(provider, nil, DefaultCacheConfig())
	ctx := context.Background()

	_, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.ErrorIs(t, err, domain.ErrCatalogUnavailable)

	cards, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, 2, provider.callCount())
}

func TestService_Invalidate_ForcesRefetch(t *testing.T) {
	provider := &stubProvider{cards: stubCards}
	svc := NewService(provider, nil, DefaultCacheConfig())
	ctx := context.Background()

	_, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)

	svc.Invalidate(ctx, "tst", domain.VariantCards)

	_, err = svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)

	assert.Equal(t, 2, provider.callCount())
}

func TestService_Cards_ConcurrentRequestsFetchOnce(t *testing.T) {
	provider := &stubProvider{cards: stubCards, delay: 50 * time.Millisecond}
	svc := NewService(provider, nil, DefaultCacheConfig())

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Cards(context.Background(), "tst", domain.VariantCards)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, provider.callCount())
}

func TestService_Cards_PublishesLoadEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	var payloads []event.CatalogLoadedPayloadV1
	bus.Subscribe(event.CatalogLoaded, func(ctx context.Context, evt event.Event) error {
		payload, ok := evt.Payload.(event.CatalogLoadedPayloadV1)
		require.True(t, ok)
		payloads = append(payloads, payload)
		return nil
	})

	provider := &stubProvider{cards: stubCards}
	svc := NewService(provider, bus, DefaultCacheConfig())
	ctx := context.Background()

	_, err := svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)

	_, err = svc.Cards(ctx, "tst", domain.VariantCards)
	require.NoError(t, err)

	require.Len(t, payloads, 2)
	assert.Equal(t, "tst", payloads[0].SetCode)
	assert.Equal(t, "cards", payloads[0].Variant)
	assert.Equal(t, 2, payloads[0].Cards)
	assert.Equal(t, 1, payloads[0].Pages)
	assert.False(t, payloads[0].CacheHit)
	assert.True(t, payloads[1].CacheHit)
}
