package collection_bench

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/event"
	"github.com/binderapp/binder/internal/query"
	"github.com/binderapp/binder/internal/stats"
	"github.com/binderapp/binder/internal/storage"
)

const catalogSize = 500

func benchCards() []domain.Card {
	cards := make([]domain.Card, 0, catalogSize)
	rarities := []domain.Rarity{domain.RarityCommon, domain.RarityUncommon, domain.RarityRare, domain.RarityMythic}
	for i := 0; i < catalogSize; i++ {
		price := decimal.NewFromFloat(float64(i%50) * 0.25)
		cards = append(cards, domain.Card{
			ID:              fmt.Sprintf("card-%04d", i),
			Name:            fmt.Sprintf("Bench Card %d", i),
			SetCode:         "bch",
			CollectorNumber: fmt.Sprintf("%d", i+1),
			Rarity:          rarities[i%len(rarities)],
			HasNonFoil:      true,
			HasFoil:         i%3 == 0,
			PriceNonFoil:    &price,
		})
	}
	return cards
}

func benchService(b *testing.B) collection.Service {
	b.Helper()
	svc := collection.NewService(storage.NewMemory(), event.NewMemoryBus())
	if err := svc.Load(context.Background()); err != nil {
		b.Fatal(err)
	}
	return svc
}

func BenchmarkSetQuantities(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cardID := fmt.Sprintf("card-%04d", i%catalogSize)
		if _, err := svc.SetQuantities(ctx, cardID, i%4, i%2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkImport(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()

	entries := make([]domain.CollectionEntry, 0, catalogSize)
	for i := 0; i < catalogSize; i++ {
		entries = append(entries, domain.CollectionEntry{
			CardID:    fmt.Sprintf("card-%04d", i),
			NormalQty: i%4 + 1,
			FoilQty:   i % 2,
		})
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Import(ctx, payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeStats(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()
	cards := benchCards()

	for i := 0; i < catalogSize; i += 2 {
		if _, err := svc.SetQuantities(ctx, cards[i].ID, 2, 1); err != nil {
			b.Fatal(err)
		}
	}
	lookup := func(cardID string) (domain.CollectionEntry, bool) {
		return svc.Get(ctx, cardID)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Compute(cards, lookup)
	}
}

func BenchmarkFilter(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()
	cards := benchCards()

	for i := 0; i < catalogSize; i += 3 {
		if _, err := svc.SetQuantities(ctx, cards[i].ID, 1, 0); err != nil {
			b.Fatal(err)
		}
	}
	lookup := func(cardID string) domain.OwnershipStatus {
		return svc.Status(ctx, cardID)
	}
	criteria, err := query.ParseCriteria("", "", "missing", "")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = query.Apply(cards, lookup, criteria)
	}
}
