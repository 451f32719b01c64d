package domain

import "golang.org/x/text/language"

// Language is the collector's display language preference. It also drives
// locale-aware name collation when sorting cards.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
)

// DefaultLanguage is used until the collector picks one
const DefaultLanguage = LanguageEnglish

// ParseLanguage validates a language string
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageGerman, LanguageSpanish, LanguageFrench:
		return Language(s), nil
	}
	return "", ErrUnknownLanguage
}

// Tag returns the BCP 47 tag for collation
func (l Language) Tag() language.Tag {
	switch l {
	case LanguageGerman:
		return language.German
	case LanguageSpanish:
		return language.Spanish
	case LanguageFrench:
		return language.French
	default:
		return language.English
	}
}

// CatalogVariant selects which printings a catalog query returns
type CatalogVariant string

const (
	// VariantCards returns the main set cards only
	VariantCards CatalogVariant = "cards"
	// VariantExtras additionally includes promos, showcase and other extras
	VariantExtras CatalogVariant = "extras"
)

// DefaultCatalogVariant is used until the collector picks one
const DefaultCatalogVariant = VariantCards

// ParseCatalogVariant validates a catalog variant string
func ParseCatalogVariant(s string) (CatalogVariant, error) {
	switch CatalogVariant(s) {
	case VariantCards, VariantExtras:
		return CatalogVariant(s), nil
	}
	return "", ErrUnknownVariant
}

// Preferences bundles the persisted collector preferences
type Preferences struct {
	Language       Language       `json:"language"`
	CatalogVariant CatalogVariant `json:"catalog_variant"`
}
