// Package ledger records job applications. Submission checks only that the
// required fields are present; the referenced jobId is not resolved here,
// so applying to a job that no longer exists is accepted and only surfaces
// later, in the invitation workflow.
package ledger

import (
	"context"
	"io"
	"time"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

type Service struct {
	apps   repository.ApplicationRepo
	ids    ids.Generator
	now    func() time.Time
	logger *slog.Logger
}

func New(apps repository.ApplicationRepo, gen ids.Generator, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{apps: apps, ids: gen, now: now, logger: logger}
}

type SubmitInput struct {
	JobID               string `json:"jobId"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	Qualification       string `json:"qualification"`
	ResumeFileName      string `json:"resumeFileName"`
	InterviewPreference string `json:"interviewPreference"`
	Message             string `json:"message"`
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*models.Application, error) {
	if in.JobID == "" || in.Name == "" || in.Email == "" ||
		in.Phone == "" || in.Location == "" || in.Qualification == "" {
		return nil, apperr.New(apperr.KindValidation, "Missing required fields")
	}

	app := &models.Application{
		ID:                  s.ids.NewID(),
		JobID:               in.JobID,
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		Location:            in.Location,
		Qualification:       in.Qualification,
		ResumeFileName:      in.ResumeFileName,
		InterviewPreference: in.InterviewPreference,
		Message:             in.Message,
		InviteSent:          false,
		AppliedDate:         s.now().UTC(),
	}
	if app.ResumeFileName == "" {
		app.ResumeFileName = "Not provided"
	}
	if app.InterviewPreference == "" {
		app.InterviewPreference = "Not specified"
	}

	if err := s.apps.CreateApplication(ctx, app); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error submitting application", err)
	}

	s.logger.Info("application submitted",
		slog.String("application_id", app.ID),
		slog.String("job_id", app.JobID),
	)
	return app, nil
}

func (s *Service) ListAll(ctx context.Context) ([]models.Application, error) {
	apps, err := s.apps.ListApplications(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading applications", err)
	}
	return apps, nil
}

func (s *Service) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	apps, err := s.apps.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading applications", err)
	}
	return apps, nil
}
