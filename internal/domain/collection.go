package domain

// CollectionEntry records how many copies of one card the collector owns and
// whether the card sits on the wishlist. The JSON tags are pinned by the
// backup interchange format; don't rename them.
type CollectionEntry struct {
	CardID    string `json:"itemId"`
	NormalQty int    `json:"normalQty"`
	FoilQty   int    `json:"foilQty"`
	Wanted    bool   `json:"wanted,omitempty"`
}

// Empty reports whether the entry carries no information. Empty entries are
// pruned from the collection rather than persisted.
func (e CollectionEntry) Empty() bool {
	return e.NormalQty == 0 && e.FoilQty == 0 && !e.Wanted
}

// Status derives the ownership classification used by filters and stats
func (e CollectionEntry) Status() OwnershipStatus {
	return OwnershipStatus{
		Owned:     e.NormalQty > 0 || e.FoilQty > 0,
		FoilOwned: e.FoilQty > 0,
		Wanted:    e.Wanted,
	}
}

// OwnershipStatus is the derived read-only view of a collection entry.
// The zero value is the status of a card with no entry at all.
type OwnershipStatus struct {
	Owned     bool `json:"owned"`
	FoilOwned bool `json:"foil_owned"`
	Wanted    bool `json:"wanted"`
}

// ClampQuantity coerces a copy count to a valid non-negative value.
// Quantities never error; out-of-range input becomes zero.
func ClampQuantity(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
