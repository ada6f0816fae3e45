package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	data TEXT NOT NULL
);`

// Store keeps each collection as one JSON document row in a sqlite database.
// The whole-collection read/replace contract is unchanged; sqlite only buys
// durable single-file storage with write serialization at the driver level.
type Store struct {
	conn   *sql.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// New opens (creating if needed) the database at dsn and initializes the
// schema plus an empty row per known collection.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply pragma: %w", err)
		}
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	for _, name := range store.Collections() {
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO collections (name, data) VALUES (?, '[]') ON CONFLICT(name) DO NOTHING`, name); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to bootstrap collection %s: %w", name, err)
		}
	}

	return &Store{conn: conn, logger: logger}, nil
}

func (s *Store) Read(ctx context.Context, collection string, out any) error {
	row := s.conn.QueryRowContext(ctx, `SELECT data FROM collections WHERE name = ?`, collection)

	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			data = "[]"
		} else {
			return fmt.Errorf("failed to read collection %s: %w", collection, err)
		}
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", collection, err)
	}

	return nil
}

func (s *Store) Replace(ctx context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	if _, err := s.conn.ExecContext(ctx,
		`INSERT INTO collections (name, data) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		collection, string(data)); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	s.logger.Debug("collection replaced", slog.String("collection", collection))
	return nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}
