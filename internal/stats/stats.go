package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/query"
)

// EntryLookup resolves a card ID to its collection entry, reporting whether
// one exists. Passing the collection service's Get keeps the aggregation
// pure: everything computed here derives from the cards and the ledger.
type EntryLookup func(cardID string) (domain.CollectionEntry, bool)

// RarityBreakdown carries the count statistics for one rarity tier
type RarityBreakdown struct {
	TotalCards           int     `json:"total_cards"`
	OwnedCards           int     `json:"owned_cards"`
	RepeatedCards        int     `json:"repeated_cards"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Summary aggregates the collection against a card list
type Summary struct {
	TotalCards           int                               `json:"total_cards"`
	OwnedCards           int                               `json:"owned_cards"`
	RepeatedCards        int                               `json:"repeated_cards"`
	CompletionPercentage float64                           `json:"completion_percentage"`
	CollectionValue      decimal.Decimal                   `json:"collection_value"`
	Rarities             map[domain.Rarity]RarityBreakdown `json:"rarities"`
}

// Compute aggregates cards against the ledger. The collection value is what
// the owned copies are worth: normal copies at the non-foil price, foil
// copies at the foil price, absent prices as zero.
func Compute(cards []domain.Card, lookup EntryLookup) Summary {
	summary := Summary{
		CollectionValue: decimal.Zero,
		Rarities:        make(map[domain.Rarity]RarityBreakdown, len(domain.Rarities())),
	}
	for _, r := range domain.Rarities() {
		summary.Rarities[r] = RarityBreakdown{}
	}

	for _, card := range cards {
		entry, _ := lookup(card.ID)
		owned := entry.NormalQty > 0 || entry.FoilQty > 0
		repeated := entry.NormalQty + entry.FoilQty - 1
		if repeated < 0 {
			repeated = 0
		}

		summary.TotalCards++
		summary.RepeatedCards += repeated
		if owned {
			summary.OwnedCards++
		}
		summary.CollectionValue = summary.CollectionValue.Add(ownedValue(card, entry))

		tier := summary.Rarities[card.Rarity]
		tier.TotalCards++
		tier.RepeatedCards += repeated
		if owned {
			tier.OwnedCards++
		}
		summary.Rarities[card.Rarity] = tier
	}

	summary.CompletionPercentage = completion(summary.OwnedCards, summary.TotalCards)
	for rarity, tier := range summary.Rarities {
		tier.CompletionPercentage = completion(tier.OwnedCards, tier.TotalCards)
		summary.Rarities[rarity] = tier
	}

	return summary
}

// ComputeFiltered aggregates an already-filtered subset. The counts are the
// same as Compute; the value depends on the active ownership filter. For
// missing, foilOwned and wanted subsets the interesting number is what
// acquiring one copy of each card would cost at its better-priced finish,
// not what the (possibly empty) owned copies are worth.
func ComputeFiltered(cards []domain.Card, lookup EntryLookup, ownership query.Ownership) Summary {
	summary := Compute(cards, lookup)

	switch ownership {
	case query.OwnershipMissing, query.OwnershipFoilOwned, query.OwnershipWanted:
		total := decimal.Zero
		for _, card := range cards {
			total = total.Add(card.BestPrice())
		}
		summary.CollectionValue = total
	}

	return summary
}

// Snapshot condenses the aggregation into a dated value snapshot
func Snapshot(cards []domain.Card, lookup EntryLookup, now time.Time) domain.ValueSnapshot {
	summary := Compute(cards, lookup)
	return domain.ValueSnapshot{
		Date:            now.Format(domain.SnapshotDateLayout),
		TotalCards:      summary.TotalCards,
		OwnedCards:      summary.OwnedCards,
		CollectionValue: summary.CollectionValue,
		RecordedAt:      now,
	}
}

// ownedValue prices the owned copies of one card
func ownedValue(card domain.Card, entry domain.CollectionEntry) decimal.Decimal {
	value := decimal.Zero
	if entry.NormalQty > 0 {
		value = value.Add(card.PriceOf(false).Mul(decimal.NewFromInt(int64(entry.NormalQty))))
	}
	if entry.FoilQty > 0 {
		value = value.Add(card.PriceOf(true).Mul(decimal.NewFromInt(int64(entry.FoilQty))))
	}
	return value
}

func completion(owned, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(owned) / float64(total) * 100
}
