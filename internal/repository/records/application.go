package records

import (
	"context"
	"time"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
)

func (r *Repo) loadApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := r.store.Read(ctx, store.CollectionApplications, &apps); err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

func (r *Repo) CreateApplication(ctx context.Context, a *models.Application) error {
	r.appsMu.Lock()
	defer r.appsMu.Unlock()

	apps, err := r.loadApplications(ctx)
	if err != nil {
		return err
	}

	apps = append(apps, *a)
	return r.store.Replace(ctx, store.CollectionApplications, apps)
}

func (r *Repo) ListApplications(ctx context.Context) ([]models.Application, error) {
	r.appsMu.Lock()
	defer r.appsMu.Unlock()

	return r.loadApplications(ctx)
}

func (r *Repo) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	r.appsMu.Lock()
	defer r.appsMu.Unlock()

	apps, err := r.loadApplications(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Application{}
	for i := range apps {
		if apps[i].JobID == jobID {
			matched = append(matched, apps[i])
		}
	}
	return matched, nil
}

func (r *Repo) GetApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	r.appsMu.Lock()
	defer r.appsMu.Unlock()

	apps, err := r.loadApplications(ctx)
	if err != nil {
		return nil, err
	}

	for i := range apps {
		if apps[i].ID == id {
			a := apps[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *Repo) MarkInviteSent(ctx context.Context, id string, at time.Time) error {
	r.appsMu.Lock()
	defer r.appsMu.Unlock()

	apps, err := r.loadApplications(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range apps {
		if apps[i].ID == id && !apps[i].InviteSent {
			apps[i].InviteSent = true
			t := at
			apps[i].InviteSentDate = &t
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return r.store.Replace(ctx, store.CollectionApplications, apps)
}
