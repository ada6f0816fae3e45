// Package notify is the notification fan-out engine. It reacts to
// job-posting and interview-invitation events by correlating the users,
// jobs and applications collections, and owns all notification state.
package notify

import (
	"context"
	"fmt"
	"io"
	"time"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

const (
	jobPostedTitle = "New Job Posted!"
	inviteTitle    = "Interview Invitation!"
)

type Engine struct {
	users  repository.UserRepo
	jobs   repository.JobRepo
	apps   repository.ApplicationRepo
	notifs repository.NotificationRepo
	ids    ids.Generator
	now    func() time.Time
	logger *slog.Logger
}

// NewEngine wires the engine to its collaborating repositories. A nil now
// defaults to time.Now; a nil logger discards.
func NewEngine(
	users repository.UserRepo,
	jobs repository.JobRepo,
	apps repository.ApplicationRepo,
	notifs repository.NotificationRepo,
	gen ids.Generator,
	now func() time.Time,
	logger *slog.Logger,
) *Engine {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Engine{
		users:  users,
		jobs:   jobs,
		apps:   apps,
		notifs: notifs,
		ids:    gen,
		now:    now,
		logger: logger,
	}
}

// OnJobPosted creates one unread notification per registered jobseeker,
// denormalizing the job's title, company, location and type at creation
// time. The whole batch is persisted in a single collection write. No
// jobseekers is a no-op, not an error.
func (e *Engine) OnJobPosted(ctx context.Context, job *models.Job) error {
	seekers, err := e.users.ListUsersByRole(ctx, models.RoleJobseeker)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Error loading job seekers", err)
	}
	if len(seekers) == 0 {
		return nil
	}

	createdAt := e.now().UTC()
	batch := make([]models.Notification, 0, len(seekers))
	for i := range seekers {
		batch = append(batch, models.Notification{
			ID:        e.ids.NewID(),
			UserID:    seekers[i].ID,
			JobID:     job.ID,
			Title:     jobPostedTitle,
			Message:   fmt.Sprintf("%s at %s in %s", job.Title, job.Company, job.Location),
			JobTitle:  job.Title,
			Company:   job.Company,
			Location:  job.Location,
			JobType:   job.Type,
			Type:      models.NotificationTypeJobPosted,
			Read:      false,
			CreatedAt: createdAt,
		})
	}

	if err := e.notifs.AppendNotifications(ctx, batch); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Error saving notifications", err)
	}

	e.logger.Info("job posting fanned out",
		slog.String("job_id", job.ID),
		slog.Int("notified", len(batch)),
	)
	return nil
}

// InviteResult reports how the invitation workflow ended. Warning is set on
// degraded success: the invitation flag was flipped but no account matched
// the application's email, so nobody was notified.
type InviteResult struct {
	NotificationCreated bool
	UserNotified        string
	Warning             string
}

// OnInterviewInvite correlates an application to its job and to a user whose
// email matches the application's (case-insensitively, unlike login), then
// emits one interview_invitation notification and flips the application's
// invitation flag. The flag flips even when no user matches.
func (e *Engine) OnInterviewInvite(ctx context.Context, applicationID string) (*InviteResult, error) {
	app, err := e.apps.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading application", err)
	}
	if app == nil {
		return nil, apperr.New(apperr.KindNotFound, "Application not found")
	}

	job, err := e.jobs.GetJobByID(ctx, app.JobID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading job", err)
	}
	if job == nil {
		// application is left untouched
		return nil, apperr.New(apperr.KindNotFound, "Job not found")
	}

	user, err := e.users.GetUserByEmailFold(ctx, app.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error looking up user", err)
	}

	sentAt := e.now().UTC()

	if user == nil {
		if err := e.apps.MarkInviteSent(ctx, app.ID, sentAt); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "Error updating application", err)
		}
		e.logger.Warn("invitation sent without notification",
			slog.String("application_id", app.ID),
			slog.String("email", app.Email),
		)
		return &InviteResult{
			Warning: fmt.Sprintf("No user registered with email %s", app.Email),
		}, nil
	}

	n := models.Notification{
		ID:            e.ids.NewID(),
		UserID:        user.ID,
		JobID:         job.ID,
		ApplicationID: app.ID,
		Title:         inviteTitle,
		Message: fmt.Sprintf("You've been invited for an interview for %s at %s. Interview mode: %s",
			job.Title, job.Company, app.InterviewPreference),
		JobTitle:  job.Title,
		Company:   job.Company,
		Location:  job.Location,
		JobType:   job.Type,
		Type:      models.NotificationTypeInterviewInvitation,
		Read:      false,
		CreatedAt: sentAt,
	}
	if err := e.notifs.AppendNotifications(ctx, []models.Notification{n}); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error saving notification", err)
	}

	if err := e.apps.MarkInviteSent(ctx, app.ID, sentAt); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error updating application", err)
	}

	e.logger.Info("interview invitation sent",
		slog.String("application_id", app.ID),
		slog.String("user_id", user.ID),
		slog.String("job_id", job.ID),
	)
	return &InviteResult{NotificationCreated: true, UserNotified: user.Name}, nil
}

// GetForUser returns the user's notifications in collection order.
func (e *Engine) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	ns, err := e.notifs.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading notifications", err)
	}
	return ns, nil
}

func (e *Engine) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := e.notifs.CountUnreadByUser(ctx, userID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "Error counting notifications", err)
	}
	return count, nil
}

// MarkRead is idempotent: marking an already read notification succeeds.
func (e *Engine) MarkRead(ctx context.Context, notificationID string) error {
	found, err := e.notifs.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Error updating notification", err)
	}
	if !found {
		return apperr.New(apperr.KindNotFound, "Notification not found")
	}
	return nil
}

// MarkAllRead is a no-op when the user has no notifications.
func (e *Engine) MarkAllRead(ctx context.Context, userID string) error {
	if err := e.notifs.MarkAllReadForUser(ctx, userID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Error updating notifications", err)
	}
	return nil
}

// ClearForUser removes every notification addressed to the user.
func (e *Engine) ClearForUser(ctx context.Context, userID string) error {
	if err := e.notifs.ClearForUser(ctx, userID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Error clearing notifications", err)
	}
	return nil
}
