package query

import (
	"strings"

	"github.com/binderapp/binder/internal/domain"
)

// StatusLookup resolves a card ID to its ownership status. Cards without a
// collection entry resolve to the zero status.
type StatusLookup func(cardID string) domain.OwnershipStatus

// Apply filters cards through the four predicate stages conjunctively:
// search, rarity, ownership, printing. Each stage is pure over the card and
// its ownership status, so evaluation order never changes the result. The
// returned slice is always freshly allocated.
func Apply(cards []domain.Card, lookup StatusLookup, c Criteria) []domain.Card {
	term := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if !matchesSearch(card, term) {
			continue
		}
		if !matchesRarity(card, c.Rarity) {
			continue
		}
		if !matchesOwnership(lookup(card.ID), c.Ownership) {
			continue
		}
		if !matchesPrinting(card, c.Printing) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// matchesSearch does a case-insensitive substring match on the card name.
// The term must already be lower-cased and trimmed.
func matchesSearch(card domain.Card, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(card.Name), term)
}

func matchesRarity(card domain.Card, rarity string) bool {
	if rarity == "" || rarity == FilterAll {
		return true
	}
	return string(card.Rarity) == rarity
}

func matchesOwnership(status domain.OwnershipStatus, o Ownership) bool {
	switch o {
	case OwnershipAll, Ownership(""):
		return true
	case OwnershipOwned:
		return status.Owned
	case OwnershipMissing:
		return !status.Owned
	case OwnershipFoilOwned:
		return status.FoilOwned
	case OwnershipWanted:
		return status.Wanted
	}
	return false
}

func matchesPrinting(card domain.Card, p Printing) bool {
	switch p {
	case PrintingAll, Printing(""):
		return true
	case PrintingHasFoil:
		return card.HasFoil
	case PrintingHasNonFoil:
		return card.HasNonFoil
	}
	return false
}
