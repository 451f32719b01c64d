package sse

import (
	"context"
	"log/slog"

	"github.com/binderapp/binder/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all event types clients can observe
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CollectionUpdated, s.handleCollectionUpdated)
	s.bus.Subscribe(event.CollectionImported, s.handleCollectionImported)
	s.bus.Subscribe(event.CatalogLoaded, s.handleCatalogLoaded)
	s.bus.Subscribe(event.SnapshotRecorded, s.handleSnapshotRecorded)

	slog.Info("SSE subscriber registered for event types",
		"types", []string{
			string(event.CollectionUpdated),
			string(event.CollectionImported),
			string(event.CatalogLoaded),
			string(event.SnapshotRecorded),
		})
}

func (s *Subscriber) handleCollectionUpdated(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.CollectionUpdatedPayloadV1)
	if !ok {
		slog.Warn("Invalid collection updated event payload type")
		return nil
	}

	s.hub.Broadcast(EventTypeCollectionChanged, CollectionChangedPayload{
		CardID:    payload.CardID,
		NormalQty: payload.NormalQty,
		FoilQty:   payload.FoilQty,
		Wanted:    payload.Wanted,
		Owned:     payload.Owned,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeCollectionChanged,
		"card_id", payload.CardID)

	return nil
}

func (s *Subscriber) handleCollectionImported(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.CollectionImportedPayloadV1)
	if !ok {
		slog.Warn("Invalid collection imported event payload type")
		return nil
	}

	s.hub.Broadcast(EventTypeImportCompleted, ImportCompletedPayload{
		Kept:    payload.Kept,
		Dropped: payload.Dropped,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeImportCompleted,
		"kept", payload.Kept,
		"dropped", payload.Dropped)

	return nil
}

func (s *Subscriber) handleCatalogLoaded(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.CatalogLoadedPayloadV1)
	if !ok {
		slog.Warn("Invalid catalog loaded event payload type")
		return nil
	}

	// Cache hits happen on every read; only actual fetches are news
	if payload.CacheHit {
		return nil
	}

	s.hub.Broadcast(EventTypeCatalogRefreshed, CatalogRefreshedPayload{
		SetCode: payload.SetCode,
		Variant: payload.Variant,
		Cards:   payload.Cards,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeCatalogRefreshed,
		"set", payload.SetCode,
		"cards", payload.Cards)

	return nil
}

func (s *Subscriber) handleSnapshotRecorded(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.SnapshotRecordedPayloadV1)
	if !ok {
		slog.Warn("Invalid snapshot recorded event payload type")
		return nil
	}

	s.hub.Broadcast(EventTypeSnapshotRecorded, SnapshotRecordedPayload{
		Date:            payload.Date,
		TotalCards:      payload.TotalCards,
		OwnedCards:      payload.OwnedCards,
		CollectionValue: payload.CollectionValue,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSnapshotRecorded,
		"date", payload.Date)

	return nil
}
