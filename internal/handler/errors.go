package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Collection operation error messages
	ErrMsgExportFailed       = "Failed to export collection"
	ErrMsgCardIDRequired     = "Card ID is required"
	ErrMsgImportBodyTooLarge = "Import payload too large"

	// Snapshot error messages
	ErrMsgListSnapshotsFailed = "Failed to list snapshots"
)

// Success messages for API responses
const (
	MsgCatalogRefreshed = "Catalog cache invalidated and reloaded"
	MsgSnapshotRecorded = "Snapshot recorded"
)
