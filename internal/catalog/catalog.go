// Package catalog owns the job posting lifecycle: create, list, search and
// delete. Creating a posting hands the persisted job to the notifier for
// fan-out to jobseekers.
package catalog

import (
	"context"
	"io"
	"strings"
	"time"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

// Notifier receives the job after it has been persisted.
type Notifier interface {
	OnJobPosted(ctx context.Context, job *models.Job) error
}

type Service struct {
	jobs     repository.JobRepo
	notifier Notifier
	ids      ids.Generator
	now      func() time.Time
	logger   *slog.Logger
}

func New(jobs repository.JobRepo, notifier Notifier, gen ids.Generator, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{jobs: jobs, notifier: notifier, ids: gen, now: now, logger: logger}
}

type CreateInput struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Salary       string `json:"salary"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// Create validates, defaults, persists and then fans out. A fan-out failure
// surfaces to the caller even though the job itself is already stored; the
// crash-between-steps inconsistency is accepted and recoverable.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Job, error) {
	if in.Title == "" || in.Company == "" || in.Location == "" {
		return nil, apperr.New(apperr.KindValidation, "Missing required fields")
	}

	job := &models.Job{
		ID:           s.ids.NewID(),
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		Type:         in.Type,
		Salary:       in.Salary,
		Description:  in.Description,
		Requirements: in.Requirements,
		PostedDate:   s.now().UTC(),
	}
	if job.Type == "" {
		job.Type = "Full Time"
	}
	if job.Salary == "" {
		job.Salary = "Not specified"
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error adding job", err)
	}

	if err := s.notifier.OnJobPosted(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job posted", slog.String("job_id", job.ID), slog.String("company", job.Company))
	return job, nil
}

func (s *Service) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading jobs", err)
	}
	return jobs, nil
}

// SearchFilter fields are optional and compose with AND semantics. Title
// matches the job title or company as a case-insensitive substring,
// Location as a case-insensitive substring, Type exactly.
type SearchFilter struct {
	Title    string
	Location string
	Type     string
}

func (s *Service) Search(ctx context.Context, f SearchFilter) ([]models.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading jobs", err)
	}

	matched := []models.Job{}
	title := strings.ToLower(f.Title)
	location := strings.ToLower(f.Location)
	for i := range jobs {
		j := jobs[i]
		if f.Title != "" &&
			!strings.Contains(strings.ToLower(j.Title), title) &&
			!strings.Contains(strings.ToLower(j.Company), title) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		matched = append(matched, j)
	}
	return matched, nil
}

// Delete removes the posting only. Applications and notifications keep their
// references to the deleted id; orphans are the documented policy.
func (s *Service) Delete(ctx context.Context, id string) error {
	found, err := s.jobs.DeleteJob(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Error deleting job", err)
	}
	if !found {
		return apperr.New(apperr.KindNotFound, "Job not found")
	}

	s.logger.Info("job deleted", slog.String("job_id", id))
	return nil
}
