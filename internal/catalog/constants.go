package catalog

import "time"

// Client defaults
const (
	DefaultMaxPages = 20
	DefaultTimeout  = 30 * time.Second
)

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 30 * time.Minute
)

// userAgent identifies this client to the catalog API
const userAgent = "binder/1.0"

// Log messages
const (
	LogMsgPageFetched      = "Catalog page fetched"
	LogMsgPageCapReached   = "Catalog page cap reached, stopping pagination"
	LogMsgSetLoaded        = "Catalog set loaded"
	LogMsgCacheInvalidated = "Catalog cache invalidated"
	LogMsgFileLoaded       = "Catalog file read"
)
