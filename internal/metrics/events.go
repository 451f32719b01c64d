package metrics

import (
	"context"
	"strconv"

	"github.com/binderapp/binder/internal/event"
	"github.com/binderapp/binder/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all metered event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CollectionUpdated,
		event.CollectionImported,
		event.CatalogLoaded,
		event.SnapshotRecorded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment the event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.CollectionUpdatedPayloadV1:
		CollectionUpdates.Inc()

	case event.CollectionImportedPayloadV1:
		CollectionImports.Inc()
		ImportEntriesKept.Add(float64(payload.Kept))
		ImportEntriesDropped.Add(float64(payload.Dropped))

	case event.CatalogLoadedPayloadV1:
		CatalogLoads.WithLabelValues(payload.SetCode, cacheLabel(payload.CacheHit)).Inc()

	case event.SnapshotRecordedPayloadV1:
		SnapshotsRecorded.Inc()
		// The gauge is display-only; float precision is fine here
		if value, err := strconv.ParseFloat(payload.CollectionValue, 64); err == nil {
			CollectionValue.Set(value)
		}

	default:
		log.Debug(LogMsgPayloadUnrecognized, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func cacheLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
