package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
)

// Store is an in-memory backend for tests. Records round-trip through JSON
// so behavior matches the durable backends. ReadErr / ReplaceErr inject
// storage faults.
type Store struct {
	ReadErr    error
	ReplaceErr error

	mu   sync.RWMutex
	data map[string][]byte
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Read(_ context.Context, collection string, out any) error {
	if s.ReadErr != nil {
		return s.ReadErr
	}

	s.mu.RLock()
	data, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok {
		data = []byte("[]")
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Replace(_ context.Context, collection string, records any) error {
	if s.ReplaceErr != nil {
		return s.ReplaceErr
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	s.mu.Lock()
	s.data[collection] = data
	s.mu.Unlock()
	return nil
}

func (s *Store) Close() error { return nil }
