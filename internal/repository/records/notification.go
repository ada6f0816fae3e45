package records

import (
	"context"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
)

func (r *Repo) loadNotifications(ctx context.Context) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.store.Read(ctx, store.CollectionNotifications, &ns); err != nil {
		return nil, err
	}
	if ns == nil {
		ns = []models.Notification{}
	}
	return ns, nil
}

func (r *Repo) AppendNotifications(ctx context.Context, batch []models.Notification) error {
	if len(batch) == 0 {
		return nil
	}

	r.notifsMu.Lock()
	defer r.notifsMu.Unlock()

	ns, err := r.loadNotifications(ctx)
	if err != nil {
		return err
	}

	ns = append(ns, batch...)
	return r.store.Replace(ctx, store.CollectionNotifications, ns)
}

func (r *Repo) ListNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	r.notifsMu.Lock()
	defer r.notifsMu.Unlock()

	ns, err := r.loadNotifications(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Notification{}
	for i := range ns {
		if ns[i].UserID == userID {
			matched = append(matched, ns[i])
		}
	}
	return matched, nil
}

func (r *Repo) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	r.notifsMu.Lock()
	defer r.notifsMu.Unlock()

	ns, err := r.loadNotifications(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range ns {
		if ns[i].UserID == userID && !ns[i].Read {
			count++
		}
	}
	return count, nil
}

func (r *Repo) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	r.notifsMu.Lock()
	defer r.notifsMu.Unlock()

	ns, err := r.loadNotifications(ctx)
	if err != nil {
		return false, err
	}

	found := false
	changed := false
	for i := range ns {
		if ns[i].ID == id {
			found = true
			if !ns[i].Read {
				ns[i].Read = true
				changed = true
			}
		}
	}
	if !found {
		return false, nil
	}
	if !changed {
		// already read; marking again is a success with no write
		return true, nil
	}

	if err := r.store.Replace(ctx, store.CollectionNotifications, ns); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) MarkAllReadForUser(ctx context.Context, userID string) error {
	r.notifsMu.Lock()
	defer r.notifsMu.Unlock()

	ns, err := r.loadNotifications(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range ns {
		if ns[i].UserID == userID && !ns[i].Read {
			ns[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return r.store.Replace(ctx, store.CollectionNotifications, ns)
}

func (r *Repo) ClearForUser(ctx context.Context, userID string) error {
	r.notifsMu.Lock()
	defer r.notifsMu.Unlock()

	ns, err := r.loadNotifications(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Notification, 0, len(ns))
	for i := range ns {
		if ns[i].UserID != userID {
			kept = append(kept, ns[i])
		}
	}
	if len(kept) == len(ns) {
		return nil
	}

	return r.store.Replace(ctx, store.CollectionNotifications, kept)
}
