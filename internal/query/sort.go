package query

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"

	"github.com/binderapp/binder/internal/domain"
)

// SortKey selects the card attribute a sort orders by
type SortKey string

const (
	SortByCollector SortKey = "collector"
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
)

// Direction selects ascending or descending order
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSort validates raw sort parameters. Empty values default to the
// collector-number ascending order the catalog itself uses.
func ParseSort(key, dir string) (SortKey, Direction, error) {
	k := SortByCollector
	switch SortKey(key) {
	case SortByCollector, SortByName, SortByPrice:
		k = SortKey(key)
	case SortKey(""):
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownSortOrder, key)
	}

	d := Ascending
	switch Direction(dir) {
	case Ascending, Descending:
		d = Direction(dir)
	case Direction(""):
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownSortOrder, dir)
	}

	return k, d, nil
}

// SortCards returns a sorted copy of cards. The caller's slice is never
// reordered. Sorting is stable: cards with equal keys keep their relative
// order. Name comparison is locale-aware for the collector's language;
// collector numbers compare their numeric runs numerically, so "9" sorts
// before "10" and "10" before "10a".
func SortCards(cards []domain.Card, key SortKey, dir Direction, lang domain.Language) []domain.Card {
	out := append([]domain.Card(nil), cards...)

	var less func(a, b domain.Card) bool
	switch key {
	case SortByName:
		col := collate.New(lang.Tag())
		less = func(a, b domain.Card) bool {
			return col.CompareString(a.Name, b.Name) < 0
		}
	case SortByPrice:
		less = func(a, b domain.Card) bool {
			return a.PriceOf(false).Cmp(b.PriceOf(false)) < 0
		}
	default:
		col := collate.New(lang.Tag(), collate.Numeric)
		less = func(a, b domain.Card) bool {
			return col.CompareString(a.CollectorNumber, b.CollectorNumber) < 0
		}
	}

	if dir == Descending {
		asc := less
		less = func(a, b domain.Card) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
