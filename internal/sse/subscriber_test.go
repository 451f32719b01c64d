package sse

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/event"
)

func subscribedHub(t *testing.T) (event.Bus, *Client) {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)
	return bus, client
}

func receiveEvent(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case evt := <-client.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("no SSE event received")
		return Event{}
	}
}

func TestSubscriber_CollectionUpdateReachesClients(t *testing.T) {
	bus, client := subscribedHub(t)

	err := bus.Publish(context.Background(), event.NewCollectionUpdatedEvent("c1", 2, 1, false, true))
	require.NoError(t, err)

	evt := receiveEvent(t, client)
	assert.Equal(t, EventTypeCollectionChanged, evt.Type)
	payload, ok := evt.Payload.(CollectionChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "c1", payload.CardID)
	assert.Equal(t, 2, payload.NormalQty)
	assert.Equal(t, 1, payload.FoilQty)
	assert.True(t, payload.Owned)
	assert.False(t, payload.Wanted)
}

func TestSubscriber_ImportReachesClients(t *testing.T) {
	bus, client := subscribedHub(t)

	require.NoError(t, bus.Publish(context.Background(), event.NewCollectionImportedEvent(10, 3)))

	evt := receiveEvent(t, client)
	assert.Equal(t, EventTypeImportCompleted, evt.Type)
	payload, ok := evt.Payload.(ImportCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, 10, payload.Kept)
	assert.Equal(t, 3, payload.Dropped)
}

func TestSubscriber_CatalogCacheHitsNotBroadcast(t *testing.T) {
	bus, client := subscribedHub(t)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewCatalogLoadedEvent("tst", "cards", 250, 2, true)))
	require.NoError(t, bus.Publish(ctx, event.NewCatalogLoadedEvent("tst", "cards", 250, 2, false)))

	evt := receiveEvent(t, client)
	assert.Equal(t, EventTypeCatalogRefreshed, evt.Type)
	payload, ok := evt.Payload.(CatalogRefreshedPayload)
	require.True(t, ok)
	assert.Equal(t, "tst", payload.SetCode)
	assert.Equal(t, 250, payload.Cards)

	select {
	case extra := <-client.EventChannel:
		t.Fatalf("unexpected extra event %q", extra.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscriber_SnapshotReachesClients(t *testing.T) {
	bus, client := subscribedHub(t)

	value := decimal.RequireFromString("12.50")
	require.NoError(t, bus.Publish(context.Background(), event.NewSnapshotRecordedEvent("2025-06-01", 250, 100, value)))

	evt := receiveEvent(t, client)
	assert.Equal(t, EventTypeSnapshotRecorded, evt.Type)
	payload, ok := evt.Payload.(SnapshotRecordedPayload)
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", payload.Date)
	assert.Equal(t, 250, payload.TotalCards)
	assert.Equal(t, 100, payload.OwnedCards)
	assert.Equal(t, "12.5", payload.CollectionValue)
}
