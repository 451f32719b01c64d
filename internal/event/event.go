package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	CollectionUpdated  Type = "collection.updated"
	CollectionImported Type = "collection.imported"
	CatalogLoaded      Type = "catalog.loaded"
	SnapshotRecorded   Type = "snapshot.recorded"
)

// Typed event payloads for type safety

// CollectionUpdatedPayloadV1 is the typed payload for single-card collection changes
type CollectionUpdatedPayloadV1 struct {
	CardID    string `json:"card_id"`
	NormalQty int    `json:"normal_qty"`
	FoilQty   int    `json:"foil_qty"`
	Wanted    bool   `json:"wanted"`
	Owned     bool   `json:"owned"`
	Timestamp int64  `json:"timestamp"`
}

// CollectionImportedPayloadV1 is the typed payload for bulk collection imports
type CollectionImportedPayloadV1 struct {
	Kept      int   `json:"kept"`
	Dropped   int   `json:"dropped"`
	Timestamp int64 `json:"timestamp"`
}

// CatalogLoadedPayloadV1 is the typed payload for catalog load events
type CatalogLoadedPayloadV1 struct {
	SetCode   string `json:"set_code"`
	Variant   string `json:"variant"`
	Cards     int    `json:"cards"`
	Pages     int    `json:"pages"`
	CacheHit  bool   `json:"cache_hit"`
	Timestamp int64  `json:"timestamp"`
}

// SnapshotRecordedPayloadV1 is the typed payload for daily value snapshot events
type SnapshotRecordedPayloadV1 struct {
	Date            string `json:"date"`
	TotalCards      int    `json:"total_cards"`
	OwnedCards      int    `json:"owned_cards"`
	CollectionValue string `json:"collection_value"`
	Timestamp       int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCollectionUpdatedEvent creates a new collection updated event with type-safe payload
func NewCollectionUpdatedEvent(cardID string, normalQty, foilQty int, wanted, owned bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectionUpdated,
		Payload: CollectionUpdatedPayloadV1{
			CardID:    cardID,
			NormalQty: normalQty,
			FoilQty:   foilQty,
			Wanted:    wanted,
			Owned:     owned,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCollectionImportedEvent creates a new collection imported event
func NewCollectionImportedEvent(kept, dropped int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectionImported,
		Payload: CollectionImportedPayloadV1{
			Kept:      kept,
			Dropped:   dropped,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCatalogLoadedEvent creates a new catalog loaded event
func NewCatalogLoadedEvent(setCode, variant string, cards, pages int, cacheHit bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogLoaded,
		Payload: CatalogLoadedPayloadV1{
			SetCode:   setCode,
			Variant:   variant,
			Cards:     cards,
			Pages:     pages,
			CacheHit:  cacheHit,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"set_code": setCode,
		},
	}
}

// NewSnapshotRecordedEvent creates a new snapshot recorded event
func NewSnapshotRecordedEvent(date string, totalCards, ownedCards int, value decimal.Decimal) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SnapshotRecorded,
		Payload: SnapshotRecordedPayloadV1{
			Date:            date,
			TotalCards:      totalCards,
			OwnedCards:      ownedCards,
			CollectionValue: value.String(),
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a mutation's events are fully delivered
	// before the call returns.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
