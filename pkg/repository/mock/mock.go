package mock

import (
	"context"
	"strings"
	"time"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

// Test helpers and mocks. Each mock keeps its records in a slice in
// insertion order and exposes error fields for fault injection.
type Mocks struct {
	Users  *UserRepo
	Jobs   *JobRepo
	Apps   *ApplicationRepo
	Notifs *NotificationRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:  &UserRepo{},
		Jobs:   &JobRepo{},
		Apps:   &ApplicationRepo{},
		Notifs: &NotificationRepo{},
	}
}

type UserRepo struct {
	Stored []models.User
	Err    error
}

var _ repository.UserRepo = (*UserRepo)(nil)

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.Stored = append(m.Stored, *u)
	return nil
}

func (m *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.User{}, m.Stored...), nil
}

func (m *UserRepo) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := []models.User{}
	for i := range m.Stored {
		if m.Stored[i].Role == role {
			matched = append(matched, m.Stored[i])
		}
	}
	return matched, nil
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].Email == email {
			u := m.Stored[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) GetUserByEmailFold(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if strings.EqualFold(m.Stored[i].Email, email) {
			u := m.Stored[i]
			return &u, nil
		}
	}
	return nil, nil
}

type JobRepo struct {
	Stored []models.Job
	Err    error
}

var _ repository.JobRepo = (*JobRepo)(nil)

func (m *JobRepo) CreateJob(ctx context.Context, j *models.Job) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stored = append(m.Stored, *j)
	return nil
}

func (m *JobRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Job{}, m.Stored...), nil
}

func (m *JobRepo) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			j := m.Stored[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (m *JobRepo) DeleteJob(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	kept := make([]models.Job, 0, len(m.Stored))
	for i := range m.Stored {
		if m.Stored[i].ID != id {
			kept = append(kept, m.Stored[i])
		}
	}
	found := len(kept) != len(m.Stored)
	m.Stored = kept
	return found, nil
}

type ApplicationRepo struct {
	Stored  []models.Application
	Err     error
	MarkErr error
}

var _ repository.ApplicationRepo = (*ApplicationRepo)(nil)

func (m *ApplicationRepo) CreateApplication(ctx context.Context, a *models.Application) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stored = append(m.Stored, *a)
	return nil
}

func (m *ApplicationRepo) ListApplications(ctx context.Context) ([]models.Application, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Application{}, m.Stored...), nil
}

func (m *ApplicationRepo) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := []models.Application{}
	for i := range m.Stored {
		if m.Stored[i].JobID == jobID {
			matched = append(matched, m.Stored[i])
		}
	}
	return matched, nil
}

func (m *ApplicationRepo) GetApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			a := m.Stored[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *ApplicationRepo) MarkInviteSent(ctx context.Context, id string, at time.Time) error {
	if m.MarkErr != nil {
		return m.MarkErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id && !m.Stored[i].InviteSent {
			m.Stored[i].InviteSent = true
			t := at
			m.Stored[i].InviteSentDate = &t
		}
	}
	return nil
}

type NotificationRepo struct {
	Stored    []models.Notification
	Err       error
	AppendErr error

	// AppendCalls counts batch writes so tests can assert one write per
	// fan-out event.
	AppendCalls int
}

var _ repository.NotificationRepo = (*NotificationRepo)(nil)

func (m *NotificationRepo) AppendNotifications(ctx context.Context, ns []models.Notification) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.AppendCalls++
	m.Stored = append(m.Stored, ns...)
	return nil
}

func (m *NotificationRepo) ListNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := []models.Notification{}
	for i := range m.Stored {
		if m.Stored[i].UserID == userID {
			matched = append(matched, m.Stored[i])
		}
	}
	return matched, nil
}

func (m *NotificationRepo) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for i := range m.Stored {
		if m.Stored[i].UserID == userID && !m.Stored[i].Read {
			count++
		}
	}
	return count, nil
}

func (m *NotificationRepo) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (m *NotificationRepo) MarkAllReadForUser(ctx context.Context, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].UserID == userID {
			m.Stored[i].Read = true
		}
	}
	return nil
}

func (m *NotificationRepo) ClearForUser(ctx context.Context, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	kept := make([]models.Notification, 0, len(m.Stored))
	for i := range m.Stored {
		if m.Stored[i].UserID != userID {
			kept = append(kept, m.Stored[i])
		}
	}
	m.Stored = kept
	return nil
}
