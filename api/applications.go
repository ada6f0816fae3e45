package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/ledger"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/notify"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
)

type ApplicationsHandler struct {
	ledger *ledger.Service
	engine *notify.Engine
}

// NewApplicationsHandler creates a new ApplicationsHandler with required
// dependencies. The engine runs the invitation workflow.
func NewApplicationsHandler(l *ledger.Service, e *notify.Engine) *ApplicationsHandler {
	return &ApplicationsHandler{ledger: l, engine: e}
}

func (h *ApplicationsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ledger.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindValidation, "Invalid request"))
		return
	}

	app, err := h.ledger.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success":     true,
		"message":     "Application submitted successfully!",
		"application": app,
	})
}

func (h *ApplicationsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ledger.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationsHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	apps, err := h.ledger.ListByJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

// Invite runs the interview invitation workflow. Success without a matching
// user account is still a 200, but carries a warning instead of the
// notification fields.
func (h *ApplicationsHandler) Invite(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["applicationId"]

	result, err := h.engine.OnInterviewInvite(r.Context(), applicationID)
	if err != nil {
		writeError(w, err)
		return
	}

	if result.Warning != "" {
		writeJSON(w, http.StatusOK, envelope{
			"success": true,
			"message": "Invitation marked as sent, but user account not found for notification",
			"warning": result.Warning,
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success":             true,
		"message":             "Invitation sent successfully",
		"notificationCreated": result.NotificationCreated,
		"userNotified":        result.UserNotified,
	})
}
