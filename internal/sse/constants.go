package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeCollectionChanged is sent when a single card's ownership changes
	EventTypeCollectionChanged = "collection.changed"

	// EventTypeImportCompleted is sent after a bulk import replaces the ledger
	EventTypeImportCompleted = "collection.import_completed"

	// EventTypeCatalogRefreshed is sent when a set list is fetched from the catalog
	EventTypeCatalogRefreshed = "catalog.refreshed"

	// EventTypeSnapshotRecorded is sent when the daily value snapshot lands
	EventTypeSnapshotRecorded = "snapshot.recorded"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
)
