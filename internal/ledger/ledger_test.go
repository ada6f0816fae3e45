package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/ledger"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository/mock"
)

var fixedNow = time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*ledger.Service, *mock.Mocks) {
	t.Helper()
	m := mock.NewMocks()
	svc := ledger.New(m.Apps, &ids.Sequence{Prefix: "a"}, func() time.Time { return fixedNow }, nil)
	return svc, m
}

func validInput() ledger.SubmitInput {
	return ledger.SubmitInput{
		JobID:         "j-1",
		Name:          "Riya",
		Email:         "riya@example.com",
		Phone:         "555-0101",
		Location:      "Remote",
		Qualification: "BSc",
	}
}

func TestSubmit_DefaultsAndPersistence(t *testing.T) {
	svc, m := setupService(t)

	app, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if app.ResumeFileName != "Not provided" {
		t.Fatalf("resumeFileName = %q", app.ResumeFileName)
	}
	if app.InterviewPreference != "Not specified" {
		t.Fatalf("interviewPreference = %q", app.InterviewPreference)
	}
	if app.Message != "" {
		t.Fatalf("message = %q", app.Message)
	}
	if app.InviteSent {
		t.Fatalf("inviteSent set on submit")
	}
	if !app.AppliedDate.Equal(fixedNow) {
		t.Fatalf("appliedDate = %v", app.AppliedDate)
	}
	if len(m.Apps.Stored) != 1 {
		t.Fatalf("application not persisted")
	}
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	mutations := []func(*ledger.SubmitInput){
		func(in *ledger.SubmitInput) { in.JobID = "" },
		func(in *ledger.SubmitInput) { in.Name = "" },
		func(in *ledger.SubmitInput) { in.Email = "" },
		func(in *ledger.SubmitInput) { in.Phone = "" },
		func(in *ledger.SubmitInput) { in.Location = "" },
		func(in *ledger.SubmitInput) { in.Qualification = "" },
	}
	for i, mutate := range mutations {
		in := validInput()
		mutate(&in)
		if _, err := svc.Submit(ctx, in); apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestSubmit_JobIDPresenceOnly(t *testing.T) {
	svc, _ := setupService(t)

	// the referenced job is not resolved at submit time
	in := validInput()
	in.JobID = "does-not-exist"
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("Submit with dangling jobId: %v", err)
	}
}

func TestListByJob(t *testing.T) {
	svc, m := setupService(t)
	m.Apps.Stored = []models.Application{
		{ID: "a-1", JobID: "j-1"},
		{ID: "a-2", JobID: "j-2"},
		{ID: "a-3", JobID: "j-1"},
	}

	apps, err := svc.ListByJob(context.Background(), "j-1")
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(apps) != 2 || apps[0].ID != "a-1" || apps[1].ID != "a-3" {
		t.Fatalf("unexpected applications: %+v", apps)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil || len(all) != 3 {
		t.Fatalf("ListAll = %+v (%v)", all, err)
	}
}
