// Package postgreskv implements the storage.KV interface on a PostgreSQL
// table. Intended for deployments that already run Postgres; the default
// embedded backend is badgerkv.
package postgreskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/binderapp/binder/internal/storage"
)

// Store is a PostgreSQL-backed key-value store
type Store struct {
	db *pgxpool.Pool
}

var _ storage.KV = (*Store)(nil)

// New creates a new Store on the given connection pool
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Get returns the value for key, or storage.ErrKeyNotFound
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM kv WHERE key = $1`
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = $1`
	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the connection pool
func (s *Store) Close() error {
	s.db.Close()
	return nil
}
