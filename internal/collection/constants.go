package collection

// KeyCollection is the storage slot holding the ownership ledger as a JSON array
const KeyCollection = "collection"

// Log messages
const (
	LogMsgLoaded          = "Collection loaded"
	LogMsgLoadCorrupt     = "Stored collection is corrupt, starting empty"
	LogMsgQuantitiesSet   = "Card quantities updated"
	LogMsgWantedToggled   = "Card wishlist flag toggled"
	LogMsgImportCompleted = "Collection import completed"
	LogMsgImportDropped   = "Dropped malformed import entry"
	LogMsgPersistFailed   = "Failed to persist collection"
)

// Error messages
const (
	ErrMsgPersistFailed = "failed to persist collection"
	ErrMsgExportFailed  = "failed to export collection"
)
