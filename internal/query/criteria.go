package query

import (
	"fmt"

	"github.com/binderapp/binder/internal/domain"
)

// Ownership filters cards by the collector's relationship to them
type Ownership string

const (
	OwnershipAll       Ownership = FilterAll
	OwnershipOwned     Ownership = "owned"
	OwnershipMissing   Ownership = "missing"
	OwnershipFoilOwned Ownership = "foilOwned"
	OwnershipWanted    Ownership = "wanted"
)

// Printing filters cards by which finishes the catalog offers,
// independent of what the collector owns
type Printing string

const (
	PrintingAll        Printing = FilterAll
	PrintingHasFoil    Printing = "hasFoil"
	PrintingHasNonFoil Printing = "hasNonFoil"
)

// Criteria is one parsed filter request. The zero value matches every card;
// ParseCriteria fills the sentinels in explicitly.
type Criteria struct {
	Search    string
	Rarity    string // a rarity tier or FilterAll
	Ownership Ownership
	Printing  Printing
}

// DefaultCriteria matches every card
func DefaultCriteria() Criteria {
	return Criteria{
		Rarity:    FilterAll,
		Ownership: OwnershipAll,
		Printing:  PrintingAll,
	}
}

// ParseCriteria validates raw request parameters into Criteria.
// Empty parameters mean the stage's identity.
func ParseCriteria(search, rarity, ownership, printing string) (Criteria, error) {
	c := DefaultCriteria()
	c.Search = search

	if rarity != "" && rarity != FilterAll {
		parsed, err := domain.ParseRarity(rarity)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: %q", domain.ErrUnknownRarity, rarity)
		}
		c.Rarity = string(parsed)
	}

	own, err := ParseOwnership(ownership)
	if err != nil {
		return Criteria{}, err
	}
	c.Ownership = own

	printingFilter, err := ParsePrinting(printing)
	if err != nil {
		return Criteria{}, err
	}
	c.Printing = printingFilter

	return c, nil
}

// ParseOwnership validates an ownership filter parameter
func ParseOwnership(s string) (Ownership, error) {
	switch Ownership(s) {
	case OwnershipOwned, OwnershipMissing, OwnershipFoilOwned, OwnershipWanted:
		return Ownership(s), nil
	case OwnershipAll, Ownership(""):
		return OwnershipAll, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFilter, s)
}

// ParsePrinting validates a printing filter parameter
func ParsePrinting(s string) (Printing, error) {
	switch Printing(s) {
	case PrintingHasFoil, PrintingHasNonFoil:
		return Printing(s), nil
	case PrintingAll, Printing(""):
		return PrintingAll, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFilter, s)
}
