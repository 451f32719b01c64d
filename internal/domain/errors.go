package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgCatalogUnavailable = "catalog unavailable"
	ErrMsgCardNotFound       = "card not found"
	ErrMsgSetRequired        = "set code required"

	// Import errors
	ErrMsgImportInvalid = "import payload must be a JSON array"

	// Preference errors
	ErrMsgUnknownLanguage = "unknown language"
	ErrMsgUnknownVariant  = "unknown catalog variant"

	// Query errors
	ErrMsgUnknownRarity    = "unknown rarity"
	ErrMsgUnknownFilter    = "unknown filter value"
	ErrMsgUnknownSortOrder = "unknown sort order"

	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)
	ErrCardNotFound       = errors.New(ErrMsgCardNotFound)
	ErrSetRequired        = errors.New(ErrMsgSetRequired)

	// Import errors
	ErrImportInvalid = errors.New(ErrMsgImportInvalid)

	// Preference errors
	ErrUnknownLanguage = errors.New(ErrMsgUnknownLanguage)
	ErrUnknownVariant  = errors.New(ErrMsgUnknownVariant)

	// Query errors
	ErrUnknownRarity    = errors.New(ErrMsgUnknownRarity)
	ErrUnknownFilter    = errors.New(ErrMsgUnknownFilter)
	ErrUnknownSortOrder = errors.New(ErrMsgUnknownSortOrder)

	// Storage errors
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
