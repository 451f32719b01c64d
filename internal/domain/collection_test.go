package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCollectionEntry_Empty(t *testing.T) {
	tests := []struct {
		name  string
		entry CollectionEntry
		want  bool
	}{
		{"zero value", CollectionEntry{CardID: "c1"}, true},
		{"normal copies", CollectionEntry{CardID: "c1", NormalQty: 1}, false},
		{"foil copies", CollectionEntry{CardID: "c1", FoilQty: 2}, false},
		{"wishlist only", CollectionEntry{CardID: "c1", Wanted: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Empty())
		})
	}
}

func TestCollectionEntry_Status(t *testing.T) {
	entry := CollectionEntry{CardID: "c1", FoilQty: 1, Wanted: true}
	status := entry.Status()

	assert.True(t, status.Owned)
	assert.True(t, status.FoilOwned)
	assert.True(t, status.Wanted)

	// no entry at all => zero-value status
	assert.Equal(t, OwnershipStatus{}, CollectionEntry{CardID: "c2"}.Status())
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 0, ClampQuantity(-5))
	assert.Equal(t, 0, ClampQuantity(0))
	assert.Equal(t, 7, ClampQuantity(7))
}

func TestCard_Prices(t *testing.T) {
	normal := decimal.RequireFromString("1.50")
	foil := decimal.RequireFromString("3.00")

	card := Card{ID: "c1", PriceNonFoil: &normal, PriceFoil: &foil}
	assert.True(t, card.PriceOf(false).Equal(normal))
	assert.True(t, card.PriceOf(true).Equal(foil))
	assert.True(t, card.BestPrice().Equal(foil))

	// missing prices count as zero
	unpriced := Card{ID: "c2"}
	assert.True(t, unpriced.PriceOf(false).IsZero())
	assert.True(t, unpriced.BestPrice().IsZero())

	// one-sided price
	half := Card{ID: "c3", PriceNonFoil: &normal}
	assert.True(t, half.BestPrice().Equal(normal))
}

func TestParseRarity(t *testing.T) {
	r, err := ParseRarity("mythic")
	assert.NoError(t, err)
	assert.Equal(t, RarityMythic, r)

	_, err = ParseRarity("legendary")
	assert.ErrorIs(t, err, ErrUnknownRarity)
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("de")
	assert.NoError(t, err)
	assert.Equal(t, LanguageGerman, l)

	_, err = ParseLanguage("xx")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestParseCatalogVariant(t *testing.T) {
	v, err := ParseCatalogVariant("extras")
	assert.NoError(t, err)
	assert.Equal(t, VariantExtras, v)

	_, err = ParseCatalogVariant("everything")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
