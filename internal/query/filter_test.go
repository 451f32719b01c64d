package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/domain"
)

func testCards() []domain.Card {
	return []domain.Card{
		{ID: "c1", Name: "Lightning Bolt", CollectorNumber: "2", Rarity: domain.RarityCommon, HasNonFoil: true, HasFoil: true},
		{ID: "c2", Name: "Dark Ritual", CollectorNumber: "10", Rarity: domain.RarityUncommon, HasNonFoil: true},
		{ID: "c3", Name: "Bolt of Clarity", CollectorNumber: "1a", Rarity: domain.RarityRare, HasFoil: true},
		{ID: "c4", Name: "Serra Angel", CollectorNumber: "10a", Rarity: domain.RarityMythic, HasNonFoil: true, HasFoil: true},
	}
}

func testLookup() StatusLookup {
	statuses := map[string]domain.OwnershipStatus{
		"c1": {Owned: true},
		"c3": {Owned: true, FoilOwned: true},
		"c4": {Wanted: true},
	}
	return func(id string) domain.OwnershipStatus { return statuses[id] }
}

func ids(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestApply_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "substring", search: "bolt", want: []string{"c1", "c3"}},
		{name: "case insensitive", search: "BoLt", want: []string{"c1", "c3"}},
		{name: "empty matches all", search: "", want: []string{"c1", "c2", "c3", "c4"}},
		{name: "whitespace matches all", search: "   ", want: []string{"c1", "c2", "c3", "c4"}},
		{name: "no match", search: "dragon", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(testCards(), testLookup(), Criteria{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_Rarity(t *testing.T) {
	got := Apply(testCards(), testLookup(), Criteria{Rarity: string(domain.RarityRare)})
	assert.Equal(t, []string{"c3"}, ids(got))

	got = Apply(testCards(), testLookup(), Criteria{Rarity: FilterAll})
	assert.Len(t, got, 4)
}

func TestApply_Ownership(t *testing.T) {
	tests := []struct {
		name      string
		ownership Ownership
		want      []string
	}{
		{name: "all", ownership: OwnershipAll, want: []string{"c1", "c2", "c3", "c4"}},
		{name: "owned", ownership: OwnershipOwned, want: []string{"c1", "c3"}},
		{name: "missing", ownership: OwnershipMissing, want: []string{"c2", "c4"}},
		{name: "foil owned", ownership: OwnershipFoilOwned, want: []string{"c3"}},
		{name: "wanted", ownership: OwnershipWanted, want: []string{"c4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(testCards(), testLookup(), Criteria{Ownership: tt.ownership})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_Printing(t *testing.T) {
	got := Apply(testCards(), testLookup(), Criteria{Printing: PrintingHasFoil})
	assert.Equal(t, []string{"c1", "c3", "c4"}, ids(got))

	got = Apply(testCards(), testLookup(), Criteria{Printing: PrintingHasNonFoil})
	assert.Equal(t, []string{"c1", "c2", "c4"}, ids(got))
}

func TestApply_Conjunction(t *testing.T) {
	c := Criteria{
		Search:    "bolt",
		Ownership: OwnershipOwned,
		Printing:  PrintingHasFoil,
	}
	got := Apply(testCards(), testLookup(), c)
	assert.Equal(t, []string{"c1", "c3"}, ids(got))

	c.Rarity = string(domain.RarityRare)
	got = Apply(testCards(), testLookup(), c)
	assert.Equal(t, []string{"c3"}, ids(got))
}

// permute returns every ordering of the input indices
func permute(n int) [][]int {
	if n == 1 {
		return [][]int{{0}}
	}
	var out [][]int
	for _, sub := range permute(n - 1) {
		for pos := 0; pos <= len(sub); pos++ {
			perm := make([]int, 0, n)
			perm = append(perm, sub[:pos]...)
			perm = append(perm, n-1)
			perm = append(perm, sub[pos:]...)
			out = append(out, perm)
		}
	}
	return out
}

func TestApply_StagesCommute(t *testing.T) {
	cards := testCards()
	lookup := testLookup()

	combined := Criteria{
		Search:    "a",
		Rarity:    string(domain.RarityMythic),
		Ownership: OwnershipWanted,
		Printing:  PrintingHasFoil,
	}
	want := ids(Apply(cards, lookup, combined))
	require.NotEmpty(t, want)

	stages := []Criteria{
		{Search: combined.Search},
		{Rarity: combined.Rarity},
		{Ownership: combined.Ownership},
		{Printing: combined.Printing},
	}

	for _, perm := range permute(len(stages)) {
		got := cards
		for _, idx := range perm {
			got = Apply(got, lookup, stages[idx])
		}
		assert.Equal(t, want, ids(got), "stage order %v should not change the result", perm)
	}
}

func TestApply_ReturnsFreshSlice(t *testing.T) {
	cards := testCards()

	got := Apply(cards, testLookup(), Criteria{})
	require.Len(t, got, len(cards))

	got[0].Name = "mutated"
	assert.Equal(t, "Lightning Bolt", cards[0].Name, "filtering must not alias the input")
}

func TestParseCriteria(t *testing.T) {
	t.Run("empty parameters mean identity", func(t *testing.T) {
		c, err := ParseCriteria("", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultCriteria(), c)
	})

	t.Run("valid parameters", func(t *testing.T) {
		c, err := ParseCriteria("bolt", "rare", "foilOwned", "hasFoil")
		require.NoError(t, err)
		assert.Equal(t, "bolt", c.Search)
		assert.Equal(t, "rare", c.Rarity)
		assert.Equal(t, OwnershipFoilOwned, c.Ownership)
		assert.Equal(t, PrintingHasFoil, c.Printing)
	})

	t.Run("explicit all", func(t *testing.T) {
		c, err := ParseCriteria("", FilterAll, FilterAll, FilterAll)
		require.NoError(t, err)
		assert.Equal(t, DefaultCriteria(), c)
	})

	t.Run("unknown rarity", func(t *testing.T) {
		_, err := ParseCriteria("", "legendary", "", "")
		assert.ErrorIs(t, err, domain.ErrUnknownRarity)
	})

	t.Run("unknown ownership", func(t *testing.T) {
		_, err := ParseCriteria("", "", "borrowed", "")
		assert.ErrorIs(t, err, domain.ErrUnknownFilter)
	})

	t.Run("unknown printing", func(t *testing.T) {
		_, err := ParseCriteria("", "", "", "etched")
		assert.ErrorIs(t, err, domain.ErrUnknownFilter)
	})
}
