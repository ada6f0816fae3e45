package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces record identifiers. It is injected into every component
// that creates records so uniqueness holds even under rapid creation and so
// tests can substitute a deterministic source.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) identifiers.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequence generates "prefix-1", "prefix-2", ... for deterministic tests.
type Sequence struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
