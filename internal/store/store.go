package store

import "context"

// Collection names persisted by every backend.
const (
	CollectionUsers         = "users"
	CollectionJobs          = "jobs"
	CollectionApplications  = "applications"
	CollectionNotifications = "notifications"
)

// Collections returns every known collection name, in bootstrap order.
func Collections() []string {
	return []string{
		CollectionUsers,
		CollectionJobs,
		CollectionApplications,
		CollectionNotifications,
	}
}

// Store is the record-store primitive: a named collection read and replaced
// as a whole JSON array. A collection that was never written reads as empty.
// Implementations must return every read/write fault to the caller; faults
// are never swallowed into a false success.
type Store interface {
	// Read unmarshals the whole collection into out, which must be a
	// pointer to a slice of records.
	Read(ctx context.Context, collection string, out any) error
	// Replace overwrites the whole collection with records.
	Replace(ctx context.Context, collection string, records any) error
	Close() error
}
