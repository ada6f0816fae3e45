// Package records implements the repository interfaces on top of the
// whole-collection record store. Every method takes the owning collection's
// mutex, so all read-modify-write sequences on one collection are serialized
// through a single writer; lost updates cannot happen inside one process.
// Cross-collection operations are still not atomic as a unit.
package records

import (
	"io"
	"sync"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

type Repo struct {
	store  store.Store
	logger *slog.Logger

	usersMu  sync.Mutex
	jobsMu   sync.Mutex
	appsMu   sync.Mutex
	notifsMu sync.Mutex
}

// Ensure Repo implements the public interfaces.
var _ repository.UserRepo = (*Repo)(nil)
var _ repository.JobRepo = (*Repo)(nil)
var _ repository.ApplicationRepo = (*Repo)(nil)
var _ repository.NotificationRepo = (*Repo)(nil)

func New(st store.Store, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Repo{store: st, logger: logger}
}
