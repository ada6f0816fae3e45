package api

import (
	"github.com/gorilla/mux"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/catalog"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/directory"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/ledger"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/notify"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/repository/records"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
)

func SetupRoutes(version, buildTime string, st store.Store, gen ids.Generator) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and services
	repo := records.New(st, logger)
	engine := notify.NewEngine(repo, repo, repo, repo, gen, nil, logger)
	users := directory.New(repo, gen, logger)
	jobs := catalog.New(repo, engine, gen, nil, logger)
	apps := ledger.New(repo, gen, nil, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	usersHandler := NewUsersHandler(users)
	jobsHandler := NewJobsHandler(jobs)
	applicationsHandler := NewApplicationsHandler(apps, engine)
	notificationsHandler := NewNotificationsHandler(engine)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Users
	r.HandleFunc("/users", usersHandler.List).Methods("GET")
	r.HandleFunc("/users", usersHandler.Register).Methods("POST")
	r.HandleFunc("/login", usersHandler.Login).Methods("POST")

	// Jobs
	r.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	r.HandleFunc("/jobs", jobsHandler.List).Methods("GET")
	r.HandleFunc("/jobs/search", jobsHandler.Search).Methods("GET")
	r.HandleFunc("/jobs/{id}", jobsHandler.Delete).Methods("DELETE")

	// Applications
	r.HandleFunc("/applications", applicationsHandler.Submit).Methods("POST")
	r.HandleFunc("/applications", applicationsHandler.ListAll).Methods("GET")
	r.HandleFunc("/applications/job/{jobId}", applicationsHandler.ListByJob).Methods("GET")
	r.HandleFunc("/applications/{applicationId}/invite", applicationsHandler.Invite).Methods("PUT")

	// Notifications
	r.HandleFunc("/notifications/{userId}", notificationsHandler.ListForUser).Methods("GET")
	r.HandleFunc("/notifications/{userId}/unread-count", notificationsHandler.UnreadCount).Methods("GET")
	r.HandleFunc("/notifications/{notificationId}/read", notificationsHandler.MarkRead).Methods("PUT")
	r.HandleFunc("/notifications/{userId}/read-all", notificationsHandler.MarkAllRead).Methods("PUT")
	r.HandleFunc("/notifications/{userId}", notificationsHandler.Clear).Methods("DELETE")

	return r
}
