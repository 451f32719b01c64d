package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/binderapp/binder/internal/config"
	"github.com/binderapp/binder/internal/database"
	"github.com/binderapp/binder/internal/storage"
	"github.com/binderapp/binder/internal/storage/badgerkv"
	"github.com/binderapp/binder/internal/storage/postgreskv"
)

// Postgres pool settings for the kv backend. The workload is a handful of
// single-row reads and upserts per request, so the pool stays small.
const (
	dbMaxConnections    = 10
	dbMaxConnIdleTime   = 5 * time.Minute
	dbMaxConnLifetime   = 30 * time.Minute
)

// InitializeStorage opens the configured storage backend and returns it.
// The caller owns the returned store and must Close it on shutdown.
func InitializeStorage(cfg *config.Config) (storage.KV, error) {
	var store storage.KV

	switch cfg.StorageBackend {
	case storage.BackendBadger:
		badgerCfg := badgerkv.DefaultConfig(cfg.DataDir)
		badgerCfg.Logger = slog.Default()
		s, err := badgerkv.New(badgerCfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenStorage, err)
		}
		store = s

	case storage.BackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenStorage, err)
		}
		store = postgreskv.New(pool)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageBackend, cfg.StorageBackend)
	}

	slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend)
	return store, nil
}
