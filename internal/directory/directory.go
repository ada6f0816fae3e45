// Package directory is the identity registry: registration, lookup and
// credential checks. Registration and login compare emails case-sensitively;
// the invitation workflow's user lookup deliberately does not (see notify).
package directory

import (
	"context"
	"errors"
	"io"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

type Service struct {
	users  repository.UserRepo
	ids    ids.Generator
	logger *slog.Logger
}

func New(users repository.UserRepo, gen ids.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{users: users, ids: gen, logger: logger}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, apperr.New(apperr.KindValidation, "All fields are required")
	}

	u := &models.User{
		ID:       s.ids.NewID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.New(apperr.KindConflict, "Email already registered")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Error creating user", err)
	}

	s.logger.Info("user registered", slog.String("user_id", u.ID), slog.String("role", u.Role))
	return u, nil
}

// Authenticate matches email and password exactly (case-sensitive, both
// fields). The returned record includes the stored password field, as the
// API has always exposed it.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading users", err)
	}
	if u == nil || u.Password != password {
		return nil, apperr.New(apperr.KindAuth, "Invalid email or password")
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error loading users", err)
	}
	return users, nil
}
