package domain

import (
	"github.com/shopspring/decimal"
)

// Card represents a single printing from the external card catalog.
// Cards are immutable reference data; ownership lives in CollectionEntry.
type Card struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	SetCode         string           `json:"set_code"`
	CollectorNumber string           `json:"collector_number"` // numeric with optional suffix, e.g. "42" or "42a"
	Rarity          Rarity           `json:"rarity"`
	HasNonFoil      bool             `json:"has_non_foil"`
	HasFoil         bool             `json:"has_foil"`
	PriceNonFoil    *decimal.Decimal `json:"price_non_foil,omitempty"` // nil when no market price exists
	PriceFoil       *decimal.Decimal `json:"price_foil,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
}

// Rarity represents the catalog rarity tier of a card
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityMythic   Rarity = "mythic"
)

// Rarities lists all tiers in display order
func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityMythic}
}

// ParseRarity validates a rarity string
func ParseRarity(s string) (Rarity, error) {
	switch Rarity(s) {
	case RarityCommon, RarityUncommon, RarityRare, RarityMythic:
		return Rarity(s), nil
	}
	return "", ErrUnknownRarity
}

// PriceOf returns the market price for the given finish, zero when absent
func (c Card) PriceOf(foil bool) decimal.Decimal {
	p := c.PriceNonFoil
	if foil {
		p = c.PriceFoil
	}
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// BestPrice returns the higher of the two finish prices, zero when neither exists.
// Used when estimating what acquiring a card would cost.
func (c Card) BestPrice() decimal.Decimal {
	return decimal.Max(c.PriceOf(false), c.PriceOf(true))
}
