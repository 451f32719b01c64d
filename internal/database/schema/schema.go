package schema

// KVSchemaSQL mirrors migrations/00001_create_kv.sql for programmatic setup
// (cmd/setup and integration tests). Keep the two in sync when the table
// changes.
const KVSchemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
