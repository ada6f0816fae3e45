package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Lookup methods return (nil, nil) when no record matches; callers decide
// whether an absent record is an error. List methods preserve collection
// (insertion) order and never return a nil slice.

// ErrDuplicateEmail is returned by CreateUser when the email is already
// registered (case-sensitive compare).
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	// GetUserByEmail compares emails case-sensitively.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByEmailFold compares emails case-insensitively.
	GetUserByEmailFold(ctx context.Context, email string) (*models.User, error)
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) error
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJobByID(ctx context.Context, id string) (*models.Job, error)
	// DeleteJob reports whether a job with the given id existed. It touches
	// only the jobs collection; references from applications and
	// notifications are left dangling on purpose.
	DeleteJob(ctx context.Context, id string) (bool, error)
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, a *models.Application) error
	ListApplications(ctx context.Context) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error)
	GetApplicationByID(ctx context.Context, id string) (*models.Application, error)
	// MarkInviteSent flips inviteSent false -> true and stamps
	// inviteSentDate. The flag never reverts. A missing id is a no-op.
	MarkInviteSent(ctx context.Context, id string, at time.Time) error
}

type NotificationRepo interface {
	// AppendNotifications persists the batch in one collection write.
	AppendNotifications(ctx context.Context, ns []models.Notification) error
	ListNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error)
	CountUnreadByUser(ctx context.Context, userID string) (int, error)
	// MarkNotificationRead reports whether the notification existed.
	// Re-marking an already read notification succeeds.
	MarkNotificationRead(ctx context.Context, id string) (bool, error)
	MarkAllReadForUser(ctx context.Context, userID string) error
	ClearForUser(ctx context.Context, userID string) error
}
