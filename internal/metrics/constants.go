package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCollectionUpdates    = "collection_updates_total"
	MetricNameCollectionImports    = "collection_imports_total"
	MetricNameImportEntriesKept    = "import_entries_kept_total"
	MetricNameImportEntriesDropped = "import_entries_dropped_total"
	MetricNameCatalogLoads         = "catalog_loads_total"
	MetricNameSnapshotsRecorded    = "snapshots_recorded_total"
	MetricNameCollectionValue      = "collection_value_usd"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCollectionUpdates    = "Total number of single-card collection updates"
	HelpTextCollectionImports    = "Total number of bulk collection imports"
	HelpTextImportEntriesKept    = "Total number of import entries kept"
	HelpTextImportEntriesDropped = "Total number of import entries dropped"
	HelpTextCatalogLoads         = "Total number of catalog set loads"
	HelpTextSnapshotsRecorded    = "Total number of value snapshots recorded"
	HelpTextCollectionValue      = "Collection value in USD as of the last snapshot"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSet    = "set"
	LabelCache  = "cache"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadUnrecognized = "Event payload type not recognized"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
