package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
)

// Store keeps each collection as a pretty-printed JSON array file under dir,
// e.g. dir/users.json. This is the default backend and mirrors the on-disk
// layout the system has always used.
type Store struct {
	dir    string
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// New creates the data directory if needed and bootstraps every known
// collection with an empty array so first-run reads succeed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{dir: dir, logger: logger}
	for _, name := range store.Collections() {
		path := s.path(name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
				return nil, fmt.Errorf("failed to bootstrap collection %s: %w", name, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to stat collection %s: %w", name, err)
		}
	}

	return s, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) Read(_ context.Context, collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("[]")
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", collection, err)
	}

	return nil
}

func (s *Store) Replace(_ context.Context, collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	if err := os.WriteFile(s.path(collection), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	s.logger.Debug("collection replaced", slog.String("collection", collection))
	return nil
}

func (s *Store) Close() error { return nil }
