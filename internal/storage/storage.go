package storage

import (
	"context"
	"errors"
)

// Backend name constants for STORAGE_BACKEND selection
const (
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// ErrKeyNotFound is returned by Get when no value exists for the key
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value store the services persist through. Values are
// opaque byte slices; callers own the serialization. Implementations must be
// safe for concurrent use and must make writes durable before returning.
type KV interface {
	// Get returns the value for key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the store is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying resources
	Close() error
}
