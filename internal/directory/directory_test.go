package directory_test

import (
	"context"
	"testing"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/directory"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository/mock"
)

func setupService(t *testing.T) (*directory.Service, *mock.Mocks) {
	t.Helper()
	m := mock.NewMocks()
	return directory.New(m.Users, &ids.Sequence{Prefix: "u"}, nil), m
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		input    directory.RegisterInput
		prepare  func(m *mock.Mocks)
		wantKind apperr.Kind
	}{
		{
			name:  "Success",
			input: directory.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw", Role: models.RoleJobseeker},
		},
		{
			name:     "MissingName",
			input:    directory.RegisterInput{Email: "a@x.com", Password: "pw", Role: models.RoleJobseeker},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "MissingEmail",
			input:    directory.RegisterInput{Name: "A", Password: "pw", Role: models.RoleJobseeker},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "MissingPassword",
			input:    directory.RegisterInput{Name: "A", Email: "a@x.com", Role: models.RoleJobseeker},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "MissingRole",
			input:    directory.RegisterInput{Name: "A", Email: "a@x.com", Password: "pw"},
			wantKind: apperr.KindValidation,
		},
		{
			name:  "DuplicateEmail",
			input: directory.RegisterInput{Name: "Dup", Email: "dup@example.com", Password: "pw", Role: models.RoleEmployer},
			prepare: func(m *mock.Mocks) {
				m.Users.Stored = []models.User{{ID: "u-0", Email: "dup@example.com"}}
			},
			wantKind: apperr.KindConflict,
		},
		{
			name:  "DuplicateEmailDifferentCaseIsAllowed",
			input: directory.RegisterInput{Name: "Dup", Email: "DUP@example.com", Password: "pw", Role: models.RoleEmployer},
			prepare: func(m *mock.Mocks) {
				m.Users.Stored = []models.User{{ID: "u-0", Email: "dup@example.com"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			if tt.prepare != nil {
				tt.prepare(m)
			}

			u, err := svc.Register(context.Background(), tt.input)
			if tt.wantKind != "" {
				if err == nil || apperr.KindOf(err) != tt.wantKind {
					t.Fatalf("expected %s, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			if u.ID == "" {
				t.Fatalf("no id generated")
			}
		})
	}
}

func TestAuthenticate_CaseSensitiveBothFields(t *testing.T) {
	svc, m := setupService(t)
	m.Users.Stored = []models.User{{ID: "u-1", Email: "bob@example.com", Password: "hunter2", Role: models.RoleJobseeker}}
	ctx := context.Background()

	u, err := svc.Authenticate(ctx, "bob@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.ID != "u-1" {
		t.Fatalf("wrong user: %+v", u)
	}
	// the stored password field is returned as-is
	if u.Password != "hunter2" {
		t.Fatalf("password field stripped: %+v", u)
	}

	for _, c := range []struct{ email, password string }{
		{"Bob@example.com", "hunter2"},
		{"bob@example.com", "Hunter2"},
		{"bob@example.com", "wrong"},
		{"nobody@example.com", "hunter2"},
	} {
		if _, err := svc.Authenticate(ctx, c.email, c.password); apperr.KindOf(err) != apperr.KindAuth {
			t.Fatalf("(%s, %s): expected AuthError, got %v", c.email, c.password, err)
		}
	}
}
