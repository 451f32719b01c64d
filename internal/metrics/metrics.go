package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CollectionUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCollectionUpdates,
			Help: HelpTextCollectionUpdates,
		},
	)

	CollectionImports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCollectionImports,
			Help: HelpTextCollectionImports,
		},
	)

	ImportEntriesKept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameImportEntriesKept,
			Help: HelpTextImportEntriesKept,
		},
	)

	ImportEntriesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameImportEntriesDropped,
			Help: HelpTextImportEntriesDropped,
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLoads,
			Help: HelpTextCatalogLoads,
		},
		[]string{LabelSet, LabelCache},
	)

	SnapshotsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsRecorded,
			Help: HelpTextSnapshotsRecorded,
		},
	)

	CollectionValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCollectionValue,
			Help: HelpTextCollectionValue,
		},
	)
)
