package sqlite_test

import (
	"context"
	"testing"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	sqlitestore "github.com/Codenidhi/-hustlehub-jobportal/internal/store/sqlite"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
)

func setupStore(t *testing.T) *sqlitestore.Store {
	t.Helper()
	s, err := sqlitestore.New(context.Background(), ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNew_BootstrapsEmptyCollections(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, name := range store.Collections() {
		var records []map[string]any
		if err := s.Read(ctx, name, &records); err != nil {
			t.Fatalf("Read %s: %v", name, err)
		}
		if len(records) != 0 {
			t.Fatalf("%s not empty on first run: %+v", name, records)
		}
	}
}

func TestReplaceThenRead_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	ns := []models.Notification{
		{ID: "n-1", UserID: "u-1", JobID: "j-1", Type: models.NotificationTypeJobPosted},
		{ID: "n-2", UserID: "u-2", JobID: "j-1", Type: models.NotificationTypeJobPosted},
	}
	if err := s.Replace(ctx, store.CollectionNotifications, ns); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	var got []models.Notification
	if err := s.Read(ctx, store.CollectionNotifications, &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 || got[0].ID != "n-1" || got[1].ID != "n-2" {
		t.Fatalf("round trip lost order or records: %+v", got)
	}
}

func TestReplace_OverwritesWholeCollection(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	if err := s.Replace(ctx, store.CollectionJobs, []models.Job{{ID: "j-1"}, {ID: "j-2"}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := s.Replace(ctx, store.CollectionJobs, []models.Job{{ID: "j-2"}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	var got []models.Job
	if err := s.Read(ctx, store.CollectionJobs, &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0].ID != "j-2" {
		t.Fatalf("replace did not overwrite: %+v", got)
	}
}

func TestRead_UnknownCollectionIsEmpty(t *testing.T) {
	s := setupStore(t)

	var records []map[string]any
	if err := s.Read(context.Background(), "never-written", &records); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %+v", records)
	}
}
