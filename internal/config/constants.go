package config

import "time"

// Catalog defaults
const (
	DefaultCatalogBaseURL  = "https://api.scryfall.com"
	DefaultCatalogCacheTTL = 30 * time.Minute
)

// DefaultSnapshotInterval is how often the value snapshot job runs.
// A zero SNAPSHOT_INTERVAL disables the job entirely.
const DefaultSnapshotInterval = 24 * time.Hour

// Worker pool defaults
const (
	DefaultWorkerCount  = 4
	DefaultJobQueueSize = 16
)
