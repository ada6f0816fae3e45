package records

import (
	"context"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
)

func (r *Repo) loadJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.store.Read(ctx, store.CollectionJobs, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (r *Repo) CreateJob(ctx context.Context, j *models.Job) error {
	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()

	jobs, err := r.loadJobs(ctx)
	if err != nil {
		return err
	}

	jobs = append(jobs, *j)
	return r.store.Replace(ctx, store.CollectionJobs, jobs)
}

func (r *Repo) ListJobs(ctx context.Context) ([]models.Job, error) {
	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()

	return r.loadJobs(ctx)
}

func (r *Repo) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()

	jobs, err := r.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].ID == id {
			j := jobs[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (r *Repo) DeleteJob(ctx context.Context, id string) (bool, error) {
	r.jobsMu.Lock()
	defer r.jobsMu.Unlock()

	jobs, err := r.loadJobs(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if jobs[i].ID != id {
			kept = append(kept, jobs[i])
		}
	}
	if len(kept) == len(jobs) {
		return false, nil
	}

	if err := r.store.Replace(ctx, store.CollectionJobs, kept); err != nil {
		return false, err
	}
	return true, nil
}
