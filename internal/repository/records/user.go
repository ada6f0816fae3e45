package records

import (
	"context"
	"strings"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository"
)

func (r *Repo) loadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.Read(ctx, store.CollectionUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	users = append(users, *u)
	return r.store.Replace(ctx, store.CollectionUsers, users)
}

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	return r.loadUsers(ctx)
}

func (r *Repo) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.User{}
	for i := range users {
		if users[i].Role == role {
			matched = append(matched, users[i])
		}
	}
	return matched, nil
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Repo) GetUserByEmailFold(ctx context.Context, email string) (*models.User, error) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}
