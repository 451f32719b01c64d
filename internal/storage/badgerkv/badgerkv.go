// Package badgerkv implements the storage.KV interface on an embedded
// BadgerDB. This is the default backend: no external services, writes are
// synced to disk before a mutation returns.
package badgerkv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/binderapp/binder/internal/storage"
)

// Config holds configuration for the Badger store
type Config struct {
	// Dir is the database directory, created if missing. Ignored in memory mode.
	Dir string

	// InMemory keeps all data in RAM. Used by tests and ephemeral dev runs.
	InMemory bool

	// SyncWrites syncs every write to disk before returning
	SyncWrites bool

	// GCInterval is how often the value log garbage collector runs. 0 disables it.
	GCInterval time.Duration

	// GCDiscardRatio is the minimum garbage ratio before a value log file is rewritten
	GCDiscardRatio float64

	// Logger receives Badger's internal logging. nil silences it.
	Logger *slog.Logger
}

// DefaultConfig returns the production configuration for the given directory
func DefaultConfig(dir string) Config {
	return Config{
		Dir:            dir,
		SyncWrites:     true,
		GCInterval:     DefaultGCInterval,
		GCDiscardRatio: DefaultGCDiscardRatio,
	}
}

// InMemoryConfig returns a configuration for tests, nothing touches disk
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store is a Badger-backed key-value store
type Store struct {
	db     *badger.DB
	logger *slog.Logger
	stopGC chan struct{}
	gcDone chan struct{}
}

var _ storage.KV = (*Store)(nil)

// New opens the database and starts the garbage collection loop
func New(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, errors.New(ErrMsgDirRequired)
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgCreateDir, cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}

	s := &Store{
		db:     db,
		logger: cfg.Logger,
		stopGC: make(chan struct{}),
		gcDone: make(chan struct{}),
	}

	if cfg.GCInterval > 0 && !cfg.InMemory {
		go s.runGC(cfg.GCInterval, cfg.GCDiscardRatio)
	} else {
		close(s.gcDone)
	}

	return s, nil
}

// Get returns the value for key, or storage.ErrKeyNotFound
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgGetFailed, key, err)
	}
	return value, nil
}

// Set stores value under key
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSetFailed, key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgDeleteFailed, key, err)
	}
	return nil
}

// Ping reports whether the database is open
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errors.New(ErrMsgClosed)
	}
	return nil
}

// Close stops the GC loop and closes the database
func (s *Store) Close() error {
	close(s.stopGC)
	<-s.gcDone
	return s.db.Close()
}

// runGC drives Badger's value log garbage collection. Badger requires the
// application to call RunValueLogGC periodically; each successful call
// rewrites one file, so keep calling until it reports nothing to do.
func (s *Store) runGC(interval time.Duration, ratio float64) {
	defer close(s.gcDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopGC:
			return
		case <-ticker.C:
			for {
				err := s.db.RunValueLogGC(ratio)
				if err == nil {
					continue
				}
				if !errors.Is(err, badger.ErrNoRewrite) && s.logger != nil {
					s.logger.Warn(LogMsgGCFailed, "error", err)
				}
				break
			}
		}
	}
}

// badgerLogger adapts slog to Badger's logger interface
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
