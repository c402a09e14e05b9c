package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"frontdesk/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// DB is the local key-value store backing persistence: a single-file
// sqlite database with one kv table. Each envelope save is one UPSERT,
// so a crash between operations leaves either the previous or the new
// blob, never a mix.
type DB struct {
	conn *sqlx.DB
}

// New opens (or creates) the database file and ensures the kv table exists.
func New(cfg *config.Config) (*DB, error) {
	conn, err := sqlx.Connect("sqlite", cfg.Storage.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open local storage")

		return nil, fmt.Errorf("opening local storage: %w", err)
	}

	// One writer at a time; the core is single-threaded anyway.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		log.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to create kv table")

		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	log.Info().Str("path", cfg.Storage.Path).Msg("Local storage opened")

	return &DB{conn: conn}, nil
}

// Load returns the blob stored under key, and whether it was present.
func (d *DB) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := d.conn.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading key %q: %w", key, err)
	}

	return value, true, nil
}

// Save writes the blob under key, replacing any previous value.
func (d *DB) Save(ctx context.Context, key string, value []byte) error {
	_, err := d.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}

	return nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	return d.conn.Close() //nolint:wrapcheck
}
